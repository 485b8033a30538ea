package alertmonitor

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
)

func (w *Worker) worker(ctx context.Context) {
	if err := w.check(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't check stock alerts",
			slog.String("err", err.Error()),
		)
	}

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.check(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't check stock alerts",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// check runs one classification and returns the alerts raised and cleared
// since the previous successful check.
func (w *Worker) check(ctx context.Context) error {
	sets, err := w.src.Alerts(ctx)
	if err != nil {
		return fmt.Errorf("can't compute alerts: %w", err)
	}

	current := make(map[string]entity.StockAlert, len(sets.Stock)+len(sets.Expiry))
	for _, a := range sets.Stock {
		current[alertKey(a)] = a
	}
	for _, a := range sets.Expiry {
		current[alertKey(a)] = a
	}

	w.mu.Lock()
	previous := w.active
	w.active = current
	w.mu.Unlock()

	for k, a := range current {
		if _, ok := previous[k]; ok {
			continue
		}
		logRaised(ctx, a)
	}
	for k, a := range previous {
		if _, ok := current[k]; ok {
			continue
		}
		slog.Default().InfoContext(ctx, "stock alert cleared",
			slog.String("kind", string(a.Kind)),
			slog.String("product_id", a.ProductID),
			slog.String("lot_id", a.LotID),
		)
	}
	return nil
}

func logRaised(ctx context.Context, a entity.StockAlert) {
	attrs := []any{
		slog.String("kind", string(a.Kind)),
		slog.String("product_id", a.ProductID),
		slog.String("product_name", a.ProductName),
		slog.Int("current_stock", a.CurrentStock),
		slog.Int("min_stock", a.MinStock),
	}
	if a.DaysUntilExpiry != nil {
		attrs = append(attrs,
			slog.String("lot_id", a.LotID),
			slog.String("lot_number", a.LotNumber),
			slog.Int("days_until_expiry", *a.DaysUntilExpiry),
		)
	}
	slog.Default().WarnContext(ctx, "stock alert raised", attrs...)
}
