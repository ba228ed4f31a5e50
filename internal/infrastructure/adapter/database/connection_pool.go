package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// ConnectionPoolMonitor samples the pool and warns when it is nearly exhausted.
// Pool gauges for scraping come from the Prometheus DBStats collector instead.
type ConnectionPoolMonitor struct {
	source   func() (*sql.DB, error)
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source func() (*sql.DB, error), logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop stops the monitoring. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.source()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	stats := sqlDB.Stats()

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"inUse":     stats.InUse,
			"maxOpen":   stats.MaxOpenConnections,
			"idle":      stats.Idle,
			"waitCount": stats.WaitCount,
			"waitTime":  stats.WaitDuration.String(),
		})
	}
	return nil
}
