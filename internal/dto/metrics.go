package dto

import (
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/shopspring/decimal"
)

// Dashboard is the JSON shape of the dashboard screen.
type Dashboard struct {
	GeneratedAt       time.Time    `json:"generatedAt"`
	DailySales        string       `json:"dailySales"`
	MonthlySales      string       `json:"monthlySales"`
	LowStockCount     int          `json:"lowStockProducts"`
	ExpiringSoonCount int          `json:"expiringSoonProducts"`
	TotalCustomers    int          `json:"totalCustomers"`
	TotalProducts     int          `json:"totalProducts"`
	LowStock          []StockAlert `json:"lowStock"`
	ExpiringSoon      []StockAlert `json:"expiringSoon"`
}

// SalesReport is the JSON shape of a period report.
type SalesReport struct {
	Period       string            `json:"period"`
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	GeneratedAt  time.Time         `json:"generatedAt"`
	Summary      ReportSummary     `json:"summary"`
	DailySales   []DailySales      `json:"dailySales"`
	TopProducts  []ProductSales    `json:"topProducts"`
	TopCustomers []CustomerSummary `json:"topCustomers"`
	StockAlerts  []StockAlert      `json:"stockAlerts"`
	ExpiryAlerts []StockAlert      `json:"expiryAlerts"`
}

type ReportSummary struct {
	TotalSales     string `json:"totalSales"`
	TotalOrders    int    `json:"totalOrders"`
	TotalCustomers int    `json:"totalCustomers"`
	TotalProducts  int    `json:"totalProducts"`
	SalesGrowth    string `json:"salesGrowth"`
	OrderGrowth    string `json:"orderGrowth"`
}

type DailySales struct {
	Date       string `json:"date"`
	TotalSales string `json:"totalSales"`
	OrderCount int    `json:"orderCount"`
}

type ProductSales struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	UnitsSold    int    `json:"unitsSold"`
	Revenue      string `json:"revenue"`
	CurrentStock int    `json:"currentStock"`
}

type CustomerSummary struct {
	CustomerID       string     `json:"customerId"`
	CustomerName     string     `json:"customerName"`
	PurchaseCount    int        `json:"purchaseCount"`
	TotalSpent       string     `json:"totalSpent"`
	LastPurchaseDate *time.Time `json:"lastPurchaseDate"`
}

type StockAlert struct {
	Kind            string  `json:"kind"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	CurrentStock    int     `json:"currentStock"`
	MinStock        int     `json:"minStock"`
	LotID           string  `json:"lotId,omitempty"`
	LotNumber       string  `json:"lotNumber,omitempty"`
	LotQuantity     int     `json:"lotQuantity,omitempty"`
	ExpiryDate      *string `json:"expiryDate,omitempty"`
	DaysUntilExpiry *int    `json:"daysUntilExpiry,omitempty"`
}

func ConvertEntityDashboard(d *entity.Dashboard) *Dashboard {
	if d == nil {
		return nil
	}
	return &Dashboard{
		GeneratedAt:       d.GeneratedAt,
		DailySales:        money(d.DailySales),
		MonthlySales:      money(d.MonthlySales),
		LowStockCount:     d.LowStockCount,
		ExpiringSoonCount: d.ExpiringSoonCount,
		TotalCustomers:    d.TotalCustomers,
		TotalProducts:     d.TotalProducts,
		LowStock:          stockAlerts(d.LowStock),
		ExpiringSoon:      stockAlerts(d.ExpiringSoon),
	}
}

func ConvertEntitySalesReport(r *entity.SalesReport) *SalesReport {
	if r == nil {
		return nil
	}
	out := &SalesReport{
		Period:      string(r.Period),
		From:        r.Window.Start,
		To:          r.Window.End,
		GeneratedAt: r.GeneratedAt,
		Summary: ReportSummary{
			TotalSales:     money(r.Summary.TotalSales),
			TotalOrders:    r.Summary.TotalOrders,
			TotalCustomers: r.Summary.TotalCustomers,
			TotalProducts:  r.Summary.TotalProducts,
			SalesGrowth:    money(r.Summary.SalesGrowth),
			OrderGrowth:    money(r.Summary.OrderGrowth),
		},
		DailySales:   make([]DailySales, 0, len(r.DailySales)),
		TopProducts:  make([]ProductSales, 0, len(r.TopProducts)),
		TopCustomers: make([]CustomerSummary, 0, len(r.TopCustomers)),
		StockAlerts:  stockAlerts(r.Alerts.Stock),
		ExpiryAlerts: stockAlerts(r.Alerts.Expiry),
	}
	for _, p := range r.DailySales {
		out.DailySales = append(out.DailySales, DailySales{
			Date:       p.Date.Format(time.DateOnly),
			TotalSales: money(p.TotalSales),
			OrderCount: p.OrderCount,
		})
	}
	for _, p := range r.TopProducts {
		out.TopProducts = append(out.TopProducts, ProductSales{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			UnitsSold:    p.UnitsSold,
			Revenue:      money(p.Revenue),
			CurrentStock: p.CurrentStock,
		})
	}
	for _, c := range r.TopCustomers {
		out.TopCustomers = append(out.TopCustomers, CustomerSummary{
			CustomerID:       c.CustomerID,
			CustomerName:     c.CustomerName,
			PurchaseCount:    c.PurchaseCount,
			TotalSpent:       money(c.TotalSpent),
			LastPurchaseDate: c.LastPurchaseDate,
		})
	}
	return out
}

func stockAlerts(list []entity.StockAlert) []StockAlert {
	out := make([]StockAlert, 0, len(list))
	for _, a := range list {
		sa := StockAlert{
			Kind:            string(a.Kind),
			ProductID:       a.ProductID,
			ProductName:     a.ProductName,
			CurrentStock:    a.CurrentStock,
			MinStock:        a.MinStock,
			LotID:           a.LotID,
			LotNumber:       a.LotNumber,
			LotQuantity:     a.LotQuantity,
			DaysUntilExpiry: a.DaysUntilExpiry,
		}
		if a.ExpiryDate != nil {
			d := a.ExpiryDate.Format(time.DateOnly)
			sa.ExpiryDate = &d
		}
		out = append(out, sa)
	}
	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
