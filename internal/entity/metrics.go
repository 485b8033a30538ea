package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSelector is a relative report period chosen by the caller.
type PeriodSelector string

const (
	PeriodToday      PeriodSelector = "today"
	PeriodLast7Days  PeriodSelector = "last_7_days"
	PeriodLast30Days PeriodSelector = "last_30_days"
	PeriodLast90Days PeriodSelector = "last_90_days"
	PeriodLastYear   PeriodSelector = "last_year"
)

// ValidPeriodSelectors lists the closed set of accepted selectors.
var ValidPeriodSelectors = map[PeriodSelector]bool{
	PeriodToday:      true,
	PeriodLast7Days:  true,
	PeriodLast30Days: true,
	PeriodLast90Days: true,
	PeriodLastYear:   true,
}

// TimeWindow is an inclusive [Start, End] instant range.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Location is the calendar the window was resolved in.
func (w TimeWindow) Location() *time.Location {
	if w.Start.IsZero() {
		return time.Local
	}
	return w.Start.Location()
}

// DailySalesPoint is one non-empty calendar day of completed sales.
type DailySalesPoint struct {
	Date       time.Time
	TotalSales decimal.Decimal
	OrderCount int
}

// ProductPerformance is one product's units and revenue from completed sales.
type ProductPerformance struct {
	ProductID    string
	ProductName  string
	UnitsSold    int
	Revenue      decimal.Decimal
	CurrentStock int
}

// CustomerSummary aggregates a customer's completed sales in scope.
// LastPurchaseDate is nil when the customer has no sales in scope.
type CustomerSummary struct {
	CustomerID       string
	CustomerName     string
	PurchaseCount    int
	TotalSpent       decimal.Decimal
	LastPurchaseDate *time.Time
}

// AlertKind labels why a product or lot was flagged.
type AlertKind string

const (
	AlertOutOfStock   AlertKind = "out_of_stock"
	AlertLowStock     AlertKind = "low_stock"
	AlertExpiringSoon AlertKind = "expiring_soon"
)

// StockAlert is a single stock or expiry classification. Stock alerts leave
// the lot fields and DaysUntilExpiry empty; expiry alerts describe one lot.
type StockAlert struct {
	Kind            AlertKind
	ProductID       string
	ProductName     string
	CurrentStock    int
	MinStock        int
	LotID           string
	LotNumber       string
	LotQuantity     int
	ExpiryDate      *time.Time
	DaysUntilExpiry *int
}

// AlertSets holds the two independent alert classifications.
type AlertSets struct {
	Stock  []StockAlert
	Expiry []StockAlert
}

// ReportSummary holds the headline numbers of a sales report.
type ReportSummary struct {
	TotalSales     decimal.Decimal
	TotalOrders    int
	TotalCustomers int
	TotalProducts  int
	SalesGrowth    decimal.Decimal
	OrderGrowth    decimal.Decimal
}

// SalesReport contains every metric computed for one report period.
type SalesReport struct {
	Period       PeriodSelector
	Window       TimeWindow
	GeneratedAt  time.Time
	Summary      ReportSummary
	DailySales   []DailySalesPoint
	TopProducts  []ProductPerformance
	TopCustomers []CustomerSummary
	Alerts       AlertSets
}

// Dashboard contains the headline counters and alert previews.
type Dashboard struct {
	GeneratedAt       time.Time
	Today             TimeWindow
	MonthToDate       TimeWindow
	DailySales        decimal.Decimal
	MonthlySales      decimal.Decimal
	LowStockCount     int
	ExpiringSoonCount int
	TotalCustomers    int
	TotalProducts     int
	LowStock          []StockAlert
	ExpiringSoon      []StockAlert
}
