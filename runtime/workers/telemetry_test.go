package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chatgram/domain/event"

	"github.com/stretchr/testify/require"
)

func TestTelemetryWorker_FeedsHandlers(t *testing.T) {
	req := require.New(t)
	counter := event.NewCounter()
	telemetryChan := make(chan event.Event, 8)
	worker := NewTelemetryWorker(slog.Default(), telemetryChan, []event.Handler{
		event.NewCounterHandler(counter),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// Given a burst of dispatched events
	telemetryChan <- event.UserOnline{UserID: "alice"}
	telemetryChan <- event.UserOnline{UserID: "bob"}
	telemetryChan <- event.UserOffline{UserID: "alice"}

	// Then the counters converge
	req.Eventually(func() bool {
		snapshot := counter.Snapshot()
		return snapshot[event.UserOnlineType] == 2 && snapshot[event.UserOfflineType] == 1
	}, time.Second, 10*time.Millisecond)

	// And the worker stops cleanly with its context
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("telemetry worker did not stop on context cancellation")
	}
}
