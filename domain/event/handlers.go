package event

import (
	"log/slog"
	"sync"
	"time"
)

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

// Counter tallies dispatched events per type, safe for concurrent use.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Snapshot() map[Type]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Type]uint64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// CounterHandler feeds the monitoring counters from the telemetry stream.
type CounterHandler struct {
	counter *Counter
}

func NewCounterHandler(counter *Counter) *CounterHandler {
	return &CounterHandler{counter: counter}
}

func (h *CounterHandler) Handle(e Event) {
	h.counter.Increment(e.Type())
}

// LatencyHandler logs the lead time between a message's creation and its
// fan-out, warning when it exceeds the configured threshold.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	msg, ok := e.(NewMessage)
	if !ok {
		return
	}
	leadTime := time.Since(msg.Message.CreatedAt)
	if leadTime > h.latencyThreshold {
		h.log.Warn("high fan-out latency detected",
			"conversation_id", msg.Message.ConversationID,
			"lead_time_ms", leadTime.Milliseconds(),
		)
	}
}
