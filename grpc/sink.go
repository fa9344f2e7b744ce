package grpc

import (
	"context"
	"fmt"

	"chatgram/domain/event"
)

// Sink bridges the synchronous fan-out dispatcher and one Connect stream.
// The dispatcher pushes into the channel; the stream writer drains it.
type Sink struct {
	Events chan event.Event
}

func NewGrpcSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.Event, bufferSize)}
}

// Consume is called by the fan-out dispatcher. It never blocks: when the
// connection's buffer is full the event is dropped and the error surfaces in
// the dispatcher's log. A client that lags recovers through reconnect
// catch-up, not through backpressure on everyone else's fan-out.
func (s *Sink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("connection buffer full, dropped %s", e.Type())
	}
}
