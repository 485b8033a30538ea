package dto

import (
	"testing"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntitySalesReport(t *testing.T) {
	expiry := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	days := 18
	r := &entity.SalesReport{
		Period: entity.PeriodToday,
		Summary: entity.ReportSummary{
			TotalSales:  decimal.RequireFromString("35"),
			SalesGrowth: decimal.RequireFromString("12.345"),
		},
		DailySales:   []entity.DailySalesPoint{{Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), TotalSales: decimal.RequireFromString("35"), OrderCount: 3}},
		TopCustomers: []entity.CustomerSummary{{CustomerID: "c1", TotalSpent: decimal.Zero}},
		Alerts: entity.AlertSets{
			Expiry: []entity.StockAlert{{Kind: entity.AlertExpiringSoon, LotID: "l1", ExpiryDate: &expiry, DaysUntilExpiry: &days}},
		},
	}

	out := ConvertEntitySalesReport(r)
	require.NotNil(t, out)
	assert.Equal(t, "today", out.Period)
	assert.Equal(t, "35.00", out.Summary.TotalSales)
	assert.Equal(t, "12.35", out.Summary.SalesGrowth)
	assert.Equal(t, []DailySales{{Date: "2024-03-15", TotalSales: "35.00", OrderCount: 3}}, out.DailySales)
	assert.Equal(t, "0.00", out.TopCustomers[0].TotalSpent)
	assert.Nil(t, out.TopCustomers[0].LastPurchaseDate)
	assert.NotNil(t, out.TopProducts)
	assert.NotNil(t, out.StockAlerts)
	require.Len(t, out.ExpiryAlerts, 1)
	assert.Equal(t, "2024-04-02", *out.ExpiryAlerts[0].ExpiryDate)

	assert.Nil(t, ConvertEntitySalesReport(nil))
}

func TestConvertEntityDashboard(t *testing.T) {
	d := ConvertEntityDashboard(&entity.Dashboard{
		DailySales:    decimal.RequireFromString("10.5"),
		MonthlySales:  decimal.RequireFromString("1000"),
		LowStockCount: 2,
	})
	assert.Equal(t, "10.50", d.DailySales)
	assert.Equal(t, "1000.00", d.MonthlySales)
	assert.Equal(t, 2, d.LowStockCount)
	assert.Empty(t, d.LowStock)
	assert.NotNil(t, d.LowStock)
}
