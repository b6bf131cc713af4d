package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/communitystore/backend/repository"
)

// Monitor periodically probes the active user store and keeps the latest
// reachability snapshot for the health endpoint. It only observes: backend
// selection happens once at startup and is never revisited.
type Monitor struct {
	store repository.UserStore

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store repository.UserStore, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	online := m.probe()
	status := Status{
		Backend:   m.store.Kind(),
		Online:    online,
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	wasOnline := m.status.Online
	m.status = status
	m.mu.Unlock()

	if wasOnline && !online {
		m.logger.Warn("store backend unreachable", zap.String("backend", status.Backend))
	}
}

func (m *Monitor) probe() bool {
	if m.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return m.store.Ping(ctx) == nil
}
