// Package alertmonitor periodically classifies stock and lot expiry and logs
// alerts as they appear and clear.
package alertmonitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
)

// Config holds configuration for the alert monitor worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		WorkerInterval: 15 * time.Minute,
	}
}

// Source computes the current alert sets.
type Source interface {
	Alerts(ctx context.Context) (entity.AlertSets, error)
}

// Worker polls a Source and logs every alert that was not raised on the
// previous tick, plus every alert that cleared since then.
type Worker struct {
	src  Source
	c    *Config
	ctx  context.Context
	stop context.CancelFunc

	mu     sync.Mutex
	active map[string]entity.StockAlert
}

// New creates a new alert monitor worker.
func New(c *Config, src Source) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 15 * time.Minute
	}
	return &Worker{
		src:    src,
		c:      c,
		active: map[string]entity.StockAlert{},
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("alert monitor already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("alert monitor already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

// Active returns the alerts raised on the last successful check.
func (w *Worker) Active() []entity.StockAlert {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]entity.StockAlert, 0, len(w.active))
	for _, a := range w.active {
		out = append(out, a)
	}
	return out
}

func alertKey(a entity.StockAlert) string {
	if a.Kind == entity.AlertExpiringSoon {
		return string(a.Kind) + "/" + a.LotID
	}
	return string(a.Kind) + "/" + a.ProductID
}
