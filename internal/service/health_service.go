package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// Pinger is implemented by every store adapter.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealth is the last observed state of one backing store
type StoreHealth struct {
	Name      string `json:"nome"`
	Up        bool   `json:"disponivel"`
	Error     string `json:"erro,omitempty"`
	LatencyMS int64  `json:"latencia_ms"`
}

// HealthReport is a snapshot of all store checks
type HealthReport struct {
	Healthy   bool          `json:"saudavel"`
	CheckedAt time.Time     `json:"verificado_em"`
	Stores    []StoreHealth `json:"bancos"`
}

type healthCheck struct {
	name   string
	pinger Pinger
}

// HealthService periodically pings the backing stores and keeps the last
// report.
type HealthService struct {
	checks   []healthCheck
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu   sync.RWMutex
	last HealthReport
}

func NewHealthService(interval time.Duration) *HealthService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &HealthService{interval: interval, timeout: timeout, now: time.Now}
}

// Register adds a store to the checks. Must be called before Start.
func (h *HealthService) Register(name string, p Pinger) {
	h.checks = append(h.checks, healthCheck{name: name, pinger: p})
}

// Start runs the checks immediately and then on every tick until ctx is done
func (h *HealthService) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	log.Printf("Health worker started - checking %d stores every %s", len(h.checks), h.interval)
	h.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Health worker stopped")
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check pings every store once and stores the resulting report
func (h *HealthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{Healthy: true, CheckedAt: h.now(), Stores: make([]StoreHealth, 0, len(h.checks))}
	for _, c := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
		start := time.Now()
		err := c.pinger.Ping(checkCtx)
		cancel()

		sh := StoreHealth{Name: c.name, Up: err == nil, LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			sh.Error = err.Error()
			report.Healthy = false
		}
		report.Stores = append(report.Stores, sh)
	}

	h.mu.Lock()
	previous := h.last
	h.last = report
	h.mu.Unlock()

	logTransitions(previous, report)
	return report
}

// Report returns the last snapshot. Before the first check it reports
// unhealthy with no stores.
func (h *HealthService) Report() HealthReport {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

func logTransitions(previous, current HealthReport) {
	was := make(map[string]bool, len(previous.Stores))
	for _, s := range previous.Stores {
		was[s.Name] = s.Up
	}
	for _, s := range current.Stores {
		up, seen := was[s.Name]
		switch {
		case !s.Up && (!seen || up):
			log.Printf("Store %s is down: %s", s.Name, s.Error)
		case s.Up && seen && !up:
			log.Printf("Store %s recovered", s.Name)
		}
	}
}
