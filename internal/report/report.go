// Package report computes dashboards and period reports from the store
// projection. It owns the clock and the time zone every calendar boundary
// is taken in.
package report

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/Sebastian1234123/sistema-farmacia/internal/analytics"
	"github.com/Sebastian1234123/sistema-farmacia/internal/dependency"
	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service computes reports on demand. It holds no state between calls.
type Service struct {
	proj dependency.Projection
	c    Config
	loc  *time.Location
	now  func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New validates c and returns a Service reading from proj.
func New(c Config, proj dependency.Projection, opts ...Option) (*Service, error) {
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report config: %w", err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load time zone %q: %w", c.Timezone, err)
	}
	s := &Service{
		proj: proj,
		c:    c,
		loc:  loc,
		now:  time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.c
}

// Now returns the current instant in the configured time zone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Report computes every metric for the given period selector.
func (s *Service) Report(ctx context.Context, period string) (*entity.SalesReport, error) {
	p, err := analytics.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	w, err := analytics.ResolveWindow(p, now)
	if err != nil {
		return nil, err
	}

	reportID := uuid.NewString()
	log := slog.Default().With(
		slog.String("report_id", reportID),
		slog.String("period", string(p)),
	)
	log.DebugContext(ctx, "computing report",
		slog.Time("from", w.Start),
		slog.Time("to", w.End),
	)

	var (
		sales         []entity.SaleRecord
		lines         []entity.SaleLine
		customers     []entity.Customer
		customerSales []entity.SaleRecord
		lowStock      []entity.Product
		lots          []entity.LotRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.proj.SalesInWindow(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		lines, err = s.proj.SaleLinesInWindow(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		customers, err = s.proj.Customers(gctx)
		return err
	})
	g.Go(func() (err error) {
		customerSales, err = s.proj.CustomerSalesInWindow(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.proj.LowStockProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		lots, err = s.proj.ExpiringLots(gctx, now, now.AddDate(0, 0, s.c.ExpiryHorizonDays))
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "can't fetch report data", slog.String("err", err.Error()))
		return nil, fmt.Errorf("report %s: %w", p, err)
	}

	alerts, err := analytics.Classify(lowStock, lots, now, s.c.ExpiryHorizonDays)
	if err != nil {
		return nil, err
	}

	daily := analytics.DailySeries(sales, w.Location())
	topProducts := analytics.TopProducts(lines, s.c.TopN)
	topCustomers := analytics.TopCustomers(customers, customerSales, s.c.TopN)
	total, orders := analytics.CompletedTotals(sales)

	r := &entity.SalesReport{
		Period:      p,
		Window:      w,
		GeneratedAt: now,
		Summary: entity.ReportSummary{
			TotalSales:     total,
			TotalOrders:    orders,
			TotalCustomers: len(topCustomers),
			TotalProducts:  len(topProducts),
			SalesGrowth:    analytics.SalesGrowth(daily, s.c.GrowthWindow),
			OrderGrowth:    analytics.OrderGrowth(daily, s.c.GrowthWindow),
		},
		DailySales:   daily,
		TopProducts:  topProducts,
		TopCustomers: topCustomers,
		Alerts:       alerts,
	}

	log.InfoContext(ctx, "report computed",
		slog.String("total_sales", total.StringFixed(2)),
		slog.Int("orders", orders),
		slog.Int("days", len(daily)),
		slog.Int("stock_alerts", len(alerts.Stock)),
		slog.Int("expiry_alerts", len(alerts.Expiry)),
	)
	return r, nil
}

// Dashboard computes today's and month to date sales, the alert counters
// and short alert previews.
func (s *Service) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	now := s.Now()
	today := analytics.DayWindow(now)
	month := analytics.MonthToDate(now)

	reportID := uuid.NewString()
	log := slog.Default().With(slog.String("report_id", reportID))

	var (
		todaySales []entity.SaleRecord
		monthSales []entity.SaleRecord
		lowStock   []entity.Product
		lots       []entity.LotRow
		counts     entity.CatalogCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		todaySales, err = s.proj.SalesInWindow(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		monthSales, err = s.proj.SalesInWindow(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.proj.LowStockProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		lots, err = s.proj.ExpiringLots(gctx, now, now.AddDate(0, 0, s.c.ExpiryHorizonDays))
		return err
	})
	g.Go(func() (err error) {
		counts, err = s.proj.CatalogCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "can't fetch dashboard data", slog.String("err", err.Error()))
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	alerts, err := analytics.Classify(lowStock, lots, now, s.c.ExpiryHorizonDays)
	if err != nil {
		return nil, err
	}
	daily, _ := analytics.CompletedTotals(todaySales)
	monthly, _ := analytics.CompletedTotals(monthSales)

	d := &entity.Dashboard{
		GeneratedAt:       now,
		Today:             today,
		MonthToDate:       month,
		DailySales:        daily,
		MonthlySales:      monthly,
		LowStockCount:     len(alerts.Stock),
		ExpiringSoonCount: len(alerts.Expiry),
		TotalCustomers:    counts.TotalCustomers,
		TotalProducts:     counts.TotalProducts,
		LowStock:          preview(alerts.Stock, s.c.LowStockPreview),
		ExpiringSoon:      preview(alerts.Expiry, s.c.ExpiringPreview),
	}

	log.InfoContext(ctx, "dashboard computed",
		slog.String("daily_sales", daily.StringFixed(2)),
		slog.String("monthly_sales", monthly.StringFixed(2)),
		slog.Int("low_stock", d.LowStockCount),
		slog.Int("expiring_soon", d.ExpiringSoonCount),
	)
	return d, nil
}

func preview(alerts []entity.StockAlert, n int) []entity.StockAlert {
	if len(alerts) > n {
		return alerts[:n]
	}
	return alerts
}

// Alerts classifies current stock and lot expiry without touching sales.
func (s *Service) Alerts(ctx context.Context) (entity.AlertSets, error) {
	now := s.Now()
	var (
		lowStock []entity.Product
		lots     []entity.LotRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		lowStock, err = s.proj.LowStockProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		lots, err = s.proj.ExpiringLots(gctx, now, now.AddDate(0, 0, s.c.ExpiryHorizonDays))
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.AlertSets{}, fmt.Errorf("alerts: %w", err)
	}
	return analytics.Classify(lowStock, lots, now, s.c.ExpiryHorizonDays)
}
