package report

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/analytics"
	"github.com/Sebastian1234123/sistema-farmacia/internal/dependency/mocks"
	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lima(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	return loc
}

func windowOf(want entity.TimeWindow) interface{} {
	return mock.MatchedBy(func(w entity.TimeWindow) bool {
		return w.Start.Equal(want.Start) && w.End.Equal(want.End)
	})
}

type fixture struct {
	now       time.Time
	customers []entity.Customer
	sales     []entity.SaleRecord
	lines     []entity.SaleLine
	lowStock  []entity.Product
	lots      []entity.LotRow
}

func newFixture(t *testing.T) fixture {
	loc := lima(t)
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, loc)
	c1 := sql.NullString{String: "c1", Valid: true}
	c2 := sql.NullString{String: "c2", Valid: true}

	sales := []entity.SaleRecord{
		{ID: "s1", Total: decimal.RequireFromString("10.00"), Status: entity.SaleCompleted, CreatedAt: time.Date(2024, 3, 14, 10, 0, 0, 0, loc), CustomerID: c1},
		{ID: "s2", Total: decimal.RequireFromString("30.00"), Status: entity.SaleCompleted, CreatedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, loc), CustomerID: c2},
		{ID: "s3", Total: decimal.RequireFromString("100.00"), Status: entity.SaleCancelled, CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, loc)},
	}
	lines := []entity.SaleLine{
		{SaleLineItem: entity.SaleLineItem{ID: "i1", SaleID: "s1", ProductID: "A", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")}, SaleStatus: entity.SaleCompleted, ProductName: "Paracetamol"},
		{SaleLineItem: entity.SaleLineItem{ID: "i2", SaleID: "s2", ProductID: "B", Quantity: 1, UnitPrice: decimal.RequireFromString("30.00")}, SaleStatus: entity.SaleCompleted, ProductName: "Insulina"},
		{SaleLineItem: entity.SaleLineItem{ID: "i3", SaleID: "s3", ProductID: "C", Quantity: 10, UnitPrice: decimal.RequireFromString("10.00")}, SaleStatus: entity.SaleCancelled, ProductName: "Vitamina C"},
	}
	return fixture{
		now:       now,
		customers: []entity.Customer{{ID: "c1", FullName: "Ana"}, {ID: "c2", FullName: "Luis"}, {ID: "c3", FullName: "Rosa"}},
		sales:     sales,
		lines:     lines,
		lowStock:  []entity.Product{{ID: "A", Name: "Paracetamol", CurrentStock: 0, MinStock: 5}},
		lots: []entity.LotRow{{
			ProductLot: entity.ProductLot{
				ID:         "l1",
				ProductID:  "B",
				LotNumber:  "LOT-1",
				ExpiryDate: sql.NullTime{Time: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), Valid: true},
				Quantity:   4,
			},
			ProductName: "Insulina",
		}},
	}
}

func newService(t *testing.T, proj *mocks.Projection, now time.Time) *Service {
	t.Helper()
	s, err := New(DefaultConfig(), proj, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return s
}

func TestReport(t *testing.T) {
	f := newFixture(t)
	w, err := analytics.ResolveWindow(entity.PeriodLast7Days, f.now)
	require.NoError(t, err)

	proj := mocks.NewProjection(t)
	proj.On("SalesInWindow", mock.Anything, windowOf(w)).Return(f.sales, nil)
	proj.On("SaleLinesInWindow", mock.Anything, windowOf(w)).Return(f.lines, nil)
	proj.On("Customers", mock.Anything).Return(f.customers, nil)
	proj.On("CustomerSalesInWindow", mock.Anything, windowOf(w)).Return(f.sales[:2], nil)
	proj.On("LowStockProducts", mock.Anything).Return(f.lowStock, nil)
	proj.On("ExpiringLots", mock.Anything, mock.Anything, mock.Anything).Return(f.lots, nil)

	r, err := newService(t, proj, f.now).Report(context.Background(), "last_7_days")
	require.NoError(t, err)

	assert.Equal(t, entity.PeriodLast7Days, r.Period)
	assert.True(t, r.Window.Start.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, f.now.Location())))
	assert.True(t, r.GeneratedAt.Equal(f.now))

	assert.True(t, r.Summary.TotalSales.Equal(decimal.RequireFromString("40")), "got %s", r.Summary.TotalSales)
	assert.Equal(t, 2, r.Summary.TotalOrders)
	assert.Equal(t, 3, r.Summary.TotalCustomers)
	assert.Equal(t, 2, r.Summary.TotalProducts)
	assert.True(t, r.Summary.SalesGrowth.IsZero())
	assert.True(t, r.Summary.OrderGrowth.IsZero())

	require.Len(t, r.DailySales, 2)
	assert.Equal(t, 14, r.DailySales[0].Date.Day())
	assert.Equal(t, "America/Lima", r.DailySales[0].Date.Location().String())
	assert.Equal(t, 15, r.DailySales[1].Date.Day())
	assert.Equal(t, 1, r.DailySales[1].OrderCount)

	require.Len(t, r.TopProducts, 2)
	assert.Equal(t, "B", r.TopProducts[0].ProductID)
	assert.Equal(t, "A", r.TopProducts[1].ProductID)

	assert.Equal(t, "c2", r.TopCustomers[0].CustomerID)
	assert.Nil(t, r.TopCustomers[2].LastPurchaseDate)

	require.Len(t, r.Alerts.Stock, 1)
	assert.Equal(t, entity.AlertOutOfStock, r.Alerts.Stock[0].Kind)
	require.Len(t, r.Alerts.Expiry, 1)
	assert.Equal(t, 10, *r.Alerts.Expiry[0].DaysUntilExpiry)
}

func TestReport_InvalidPeriod(t *testing.T) {
	proj := mocks.NewProjection(t)
	s := newService(t, proj, time.Now())

	_, err := s.Report(context.Background(), "last_week")
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)
	proj.AssertNotCalled(t, "SalesInWindow", mock.Anything, mock.Anything)
}

func TestReport_FetchFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection refused")

	proj := mocks.NewProjection(t)
	proj.On("SalesInWindow", mock.Anything, mock.Anything).Return([]entity.SaleRecord(nil), gerr.Fetch("sales", boom))
	proj.On("SaleLinesInWindow", mock.Anything, mock.Anything).Return(f.lines, nil).Maybe()
	proj.On("Customers", mock.Anything).Return(f.customers, nil).Maybe()
	proj.On("CustomerSalesInWindow", mock.Anything, mock.Anything).Return(f.sales, nil).Maybe()
	proj.On("LowStockProducts", mock.Anything).Return(f.lowStock, nil).Maybe()
	proj.On("ExpiringLots", mock.Anything, mock.Anything, mock.Anything).Return(f.lots, nil).Maybe()

	r, err := newService(t, proj, f.now).Report(context.Background(), "today")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, gerr.ErrDataFetch)
	assert.ErrorIs(t, err, boom)
}

func TestReport_EmptyDataset(t *testing.T) {
	f := newFixture(t)
	proj := mocks.NewProjection(t)
	proj.On("SalesInWindow", mock.Anything, mock.Anything).Return([]entity.SaleRecord{}, nil)
	proj.On("SaleLinesInWindow", mock.Anything, mock.Anything).Return([]entity.SaleLine{}, nil)
	proj.On("Customers", mock.Anything).Return([]entity.Customer{}, nil)
	proj.On("CustomerSalesInWindow", mock.Anything, mock.Anything).Return([]entity.SaleRecord{}, nil)
	proj.On("LowStockProducts", mock.Anything).Return([]entity.Product{}, nil)
	proj.On("ExpiringLots", mock.Anything, mock.Anything, mock.Anything).Return([]entity.LotRow{}, nil)

	r, err := newService(t, proj, f.now).Report(context.Background(), "last_year")
	require.NoError(t, err)
	assert.True(t, r.Summary.TotalSales.IsZero())
	assert.Empty(t, r.DailySales)
	assert.Empty(t, r.TopProducts)
	assert.Empty(t, r.TopCustomers)
	assert.Empty(t, r.Alerts.Stock)
	assert.Empty(t, r.Alerts.Expiry)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	today := analytics.DayWindow(f.now)
	month := analytics.MonthToDate(f.now)

	proj := mocks.NewProjection(t)
	proj.On("SalesInWindow", mock.Anything, windowOf(today)).Return(f.sales[1:], nil)
	proj.On("SalesInWindow", mock.Anything, windowOf(month)).Return(f.sales, nil)
	proj.On("LowStockProducts", mock.Anything).Return([]entity.Product{
		{ID: "1", Name: "a", CurrentStock: 4, MinStock: 5},
		{ID: "2", Name: "b", CurrentStock: 3, MinStock: 5},
		{ID: "3", Name: "c", CurrentStock: 2, MinStock: 5},
		{ID: "4", Name: "d", CurrentStock: 1, MinStock: 5},
		{ID: "5", Name: "e", CurrentStock: 0, MinStock: 5},
		{ID: "6", Name: "f", CurrentStock: 5, MinStock: 5},
	}, nil)
	proj.On("ExpiringLots", mock.Anything, mock.Anything, mock.Anything).Return(f.lots, nil)
	proj.On("CatalogCounts", mock.Anything).Return(entity.CatalogCounts{TotalProducts: 120, TotalCustomers: 48}, nil)

	d, err := newService(t, proj, f.now).Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, d.DailySales.Equal(decimal.RequireFromString("30")), "got %s", d.DailySales)
	assert.True(t, d.MonthlySales.Equal(decimal.RequireFromString("40")), "got %s", d.MonthlySales)
	assert.Equal(t, 6, d.LowStockCount)
	assert.Equal(t, 1, d.ExpiringSoonCount)
	assert.Equal(t, 120, d.TotalProducts)
	assert.Equal(t, 48, d.TotalCustomers)

	require.Len(t, d.LowStock, 5)
	assert.Equal(t, "5", d.LowStock[0].ProductID)
	assert.Equal(t, "1", d.LowStock[4].ProductID)
	assert.Len(t, d.ExpiringSoon, 1)
}

func TestNew_InvalidConfig(t *testing.T) {
	proj := mocks.NewProjection(t)

	_, err := New(Config{Timezone: "Mars/Olympus"}, proj)
	assert.Error(t, err)

	_, err = New(Config{ExpiryHorizonDays: -1}, proj)
	assert.Error(t, err)

	s, err := New(Config{}, proj)
	if err != nil {
		t.Skipf("default time zone unavailable: %v", err)
	}
	assert.Equal(t, DefaultConfig(), s.Config())
}

func TestAlerts(t *testing.T) {
	f := newFixture(t)
	proj := mocks.NewProjection(t)
	proj.On("LowStockProducts", mock.Anything).Return(f.lowStock, nil)
	proj.On("ExpiringLots", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Equal(f.now) }),
		mock.MatchedBy(func(to time.Time) bool { return to.Equal(f.now.AddDate(0, 0, 30)) }),
	).Return(f.lots, nil)

	a, err := newService(t, proj, f.now).Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, a.Stock, 1)
	assert.Equal(t, "A", a.Stock[0].ProductID)
	require.Len(t, a.Expiry, 1)
	assert.Equal(t, "l1", a.Expiry[0].LotID)
	proj.AssertNotCalled(t, "SalesInWindow", mock.Anything, mock.Anything)
}

func TestDashboard_PreviewLimitsAreIndependent(t *testing.T) {
	f := newFixture(t)
	lot := func(id string, day int) entity.LotRow {
		return entity.LotRow{ProductLot: entity.ProductLot{
			ID:         id,
			ProductID:  "B",
			LotNumber:  id,
			ExpiryDate: sql.NullTime{Time: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), Valid: true},
			Quantity:   1,
		}}
	}

	proj := mocks.NewProjection(t)
	proj.On("SalesInWindow", mock.Anything, mock.Anything).Return([]entity.SaleRecord{}, nil)
	proj.On("LowStockProducts", mock.Anything).Return([]entity.Product{
		{ID: "1", CurrentStock: 1, MinStock: 5},
		{ID: "2", CurrentStock: 2, MinStock: 5},
		{ID: "3", CurrentStock: 3, MinStock: 5},
	}, nil)
	proj.On("ExpiringLots", mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.LotRow{lot("l3", 28), lot("l1", 20), lot("l2", 25)}, nil)
	proj.On("CatalogCounts", mock.Anything).Return(entity.CatalogCounts{}, nil)

	c := DefaultConfig()
	c.LowStockPreview = 3
	c.ExpiringPreview = 1
	s, err := New(c, proj, WithClock(func() time.Time { return f.now }))
	require.NoError(t, err)

	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.LowStock, 3)
	assert.Equal(t, 3, d.ExpiringSoonCount)
	require.Len(t, d.ExpiringSoon, 1)
	assert.Equal(t, "l1", d.ExpiringSoon[0].LotID)
}
