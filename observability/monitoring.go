// Package observability aggregates runtime statistics for the debug
// endpoint: per-type event counters from the telemetry stream, presence
// headcount, and process health sampled through gopsutil.
package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"chatgram/contract"
	"chatgram/domain/event"

	"github.com/shirou/gopsutil/process"
)

type MonitoringStats struct {
	OnlineUsers   int                   `json:"online_users"`
	EventCounts   map[event.Type]uint64 `json:"event_counts"`
	CpuPercent    float64               `json:"cpu_percent"`
	RamPercent    float32               `json:"ram_percent"`
	AllocMemMb    uint64                `json:"alloc_mem_mb"`
	NumGoroutines int                   `json:"num_goroutines"`
	NumGC         uint32                `json:"num_gc"`
	SampledAt     string                `json:"sampled_at"`
}

// MonitoringManager samples system metrics on a fixed interval and merges
// them with the event counters. It implements contract.Worker and runs
// under the supervisor.
type MonitoringManager struct {
	log            *slog.Logger
	metricInterval time.Duration
	counter        *event.Counter
	presence       contract.IPresence

	mu          sync.RWMutex
	latestStats MonitoringStats
}

func NewMonitoringManager(log *slog.Logger, metricInterval time.Duration,
	counter *event.Counter, presence contract.IPresence) *MonitoringManager {
	return &MonitoringManager{
		log:            log,
		metricInterval: metricInterval,
		counter:        counter,
		presence:       presence,
	}
}

func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.metricInterval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.sample(proc)
		}
	}
}

func (mm *MonitoringManager) sample(proc *process.Process) {
	stats := MonitoringStats{
		OnlineUsers:   len(mm.presence.OnlineUsers()),
		EventCounts:   mm.counter.Snapshot(),
		NumGoroutines: runtime.NumGoroutine(),
		SampledAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if cpu, err := proc.CPUPercent(); err != nil {
		mm.log.Debug("Error while finding process cpu usage", "err", err)
	} else {
		stats.CpuPercent = cpu
	}
	if ram, err := proc.MemoryPercent(); err != nil {
		mm.log.Debug("Error while finding process ram usage", "err", err)
	} else {
		stats.RamPercent = ram
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()

	mm.log.Debug("Stats updated",
		"online_users", stats.OnlineUsers,
		"cpu_percent", stats.CpuPercent,
		"mem_mb", stats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
