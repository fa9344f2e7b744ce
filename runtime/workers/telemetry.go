package workers

import (
	"context"
	"log/slog"

	"chatgram/domain/event"
)

// TelemetryWorker drains the dispatcher's telemetry channel and feeds every
// dispatched event through the registered handlers (counters, latency
// probes). It runs supervised; a panicking handler gets the worker restarted
// without touching the fan-out path.
type TelemetryWorker struct {
	log           *slog.Logger
	telemetryChan <-chan event.Event
	handlers      []event.Handler
}

func NewTelemetryWorker(log *slog.Logger,
	telemetryChan <-chan event.Event,
	handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:           log,
		telemetryChan: telemetryChan,
		handlers:      handlers,
	}
}

func (w TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-w.telemetryChan:
			w.handle(evt)
		}
	}
}

func (w TelemetryWorker) handle(e event.Event) {
	for _, h := range w.handlers {
		h.Handle(e)
	}
}
