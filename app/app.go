package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Sebastian1234123/sistema-farmacia/config"
	"github.com/Sebastian1234123/sistema-farmacia/internal/alertmonitor"
	httpapi "github.com/Sebastian1234123/sistema-farmacia/internal/api/http"
	"github.com/Sebastian1234123/sistema-farmacia/internal/dependency"
	"github.com/Sebastian1234123/sistema-farmacia/internal/report"
	"github.com/Sebastian1234123/sistema-farmacia/internal/store"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      dependency.Repository
	monitor *alertmonitor.Worker
	c       *config.Config
	done    chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting sistema-farmacia")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}
	a.db = db

	reports, err := report.New(a.c.Reports, a.db.Projection())
	if err != nil {
		slog.Default().ErrorContext(ctx, "invalid report configuration", slog.String("err", err.Error()))
		return err
	}

	if a.c.AlertMonitor.Enabled {
		a.monitor = alertmonitor.New(&a.c.AlertMonitor, reports)
		if err = a.monitor.Start(ctx); err != nil {
			return fmt.Errorf("cannot start alert monitor: %w", err)
		}
	}

	a.hs = httpapi.New(&a.c.HTTP, reports, a.db)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("err", err.Error()))
		}
	}
	if a.monitor != nil {
		_ = a.monitor.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

// ServerDone returns a channel that is closed when the http server exits on its own.
func (a *App) ServerDone() <-chan struct{} {
	if a.hs == nil {
		return nil
	}
	return a.hs.Done()
}
