// Package export renders report sections as flat tables and writes them to
// CSV or JSON sinks.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	"github.com/shopspring/decimal"
)

type Section string

const (
	SectionDailySales   Section = "daily_sales"
	SectionTopProducts  Section = "top_products"
	SectionTopCustomers Section = "top_customers"
	SectionStockAlerts  Section = "stock_alerts"
	SectionExpiryAlerts Section = "expiry_alerts"
	SectionSummary      Section = "summary"
)

// Sections lists every exportable section in display order.
var Sections = []Section{
	SectionSummary,
	SectionDailySales,
	SectionTopProducts,
	SectionTopCustomers,
	SectionStockAlerts,
	SectionExpiryAlerts,
}

// ParseSection validates a raw section name.
func ParseSection(raw string) (Section, error) {
	for _, s := range Sections {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", gerr.ErrUnknownSection, raw)
}

// Table is a named row set with string cells, ready for a Sink.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

const dateLayout = "2006-01-02"

// NeverPurchased is shown for customers without purchases in scope.
const NeverPurchased = "never"

// Build renders one section of r as a table.
func Build(r *entity.SalesReport, s Section) (Table, error) {
	switch s {
	case SectionDailySales:
		return dailySales(r.DailySales), nil
	case SectionTopProducts:
		return topProducts(r.TopProducts), nil
	case SectionTopCustomers:
		return topCustomers(r.TopCustomers), nil
	case SectionStockAlerts:
		return stockAlerts(r.Alerts.Stock), nil
	case SectionExpiryAlerts:
		return expiryAlerts(r.Alerts.Expiry), nil
	case SectionSummary:
		return summary(r), nil
	default:
		return Table{}, fmt.Errorf("%w: %q", gerr.ErrUnknownSection, string(s))
	}
}

// Money formats an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent formats a percentage with two decimals.
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func dailySales(points []entity.DailySalesPoint) Table {
	t := Table{
		Name:    string(SectionDailySales),
		Columns: []string{"date", "total_sales", "order_count"},
		Rows:    make([][]string, 0, len(points)),
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{
			p.Date.Format(dateLayout),
			Money(p.TotalSales),
			strconv.Itoa(p.OrderCount),
		})
	}
	return t
}

func topProducts(perf []entity.ProductPerformance) Table {
	t := Table{
		Name:    string(SectionTopProducts),
		Columns: []string{"rank", "product_id", "product_name", "units_sold", "revenue", "current_stock"},
		Rows:    make([][]string, 0, len(perf)),
	}
	for i, p := range perf {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			p.ProductID,
			p.ProductName,
			strconv.Itoa(p.UnitsSold),
			Money(p.Revenue),
			strconv.Itoa(p.CurrentStock),
		})
	}
	return t
}

func topCustomers(sums []entity.CustomerSummary) Table {
	t := Table{
		Name:    string(SectionTopCustomers),
		Columns: []string{"rank", "customer_id", "customer_name", "purchase_count", "total_spent", "last_purchase_date"},
		Rows:    make([][]string, 0, len(sums)),
	}
	for i, c := range sums {
		last := NeverPurchased
		if c.LastPurchaseDate != nil {
			last = c.LastPurchaseDate.Format(dateLayout)
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			c.CustomerID,
			c.CustomerName,
			strconv.Itoa(c.PurchaseCount),
			Money(c.TotalSpent),
			last,
		})
	}
	return t
}

func stockAlerts(alerts []entity.StockAlert) Table {
	t := Table{
		Name:    string(SectionStockAlerts),
		Columns: []string{"kind", "product_id", "product_name", "current_stock", "min_stock"},
		Rows:    make([][]string, 0, len(alerts)),
	}
	for _, a := range alerts {
		t.Rows = append(t.Rows, []string{
			string(a.Kind),
			a.ProductID,
			a.ProductName,
			strconv.Itoa(a.CurrentStock),
			strconv.Itoa(a.MinStock),
		})
	}
	return t
}

func expiryAlerts(alerts []entity.StockAlert) Table {
	t := Table{
		Name:    string(SectionExpiryAlerts),
		Columns: []string{"product_id", "product_name", "lot_id", "lot_number", "lot_quantity", "expiry_date", "days_until_expiry"},
		Rows:    make([][]string, 0, len(alerts)),
	}
	for _, a := range alerts {
		t.Rows = append(t.Rows, []string{
			a.ProductID,
			a.ProductName,
			a.LotID,
			a.LotNumber,
			strconv.Itoa(a.LotQuantity),
			optDate(a.ExpiryDate),
			optInt(a.DaysUntilExpiry),
		})
	}
	return t
}

func summary(r *entity.SalesReport) Table {
	s := r.Summary
	return Table{
		Name:    string(SectionSummary),
		Columns: []string{"metric", "value"},
		Rows: [][]string{
			{"period", string(r.Period)},
			{"from", r.Window.Start.Format(time.RFC3339)},
			{"to", r.Window.End.Format(time.RFC3339)},
			{"total_sales", Money(s.TotalSales)},
			{"total_orders", strconv.Itoa(s.TotalOrders)},
			{"total_customers", strconv.Itoa(s.TotalCustomers)},
			{"total_products", strconv.Itoa(s.TotalProducts)},
			{"sales_growth_pct", Percent(s.SalesGrowth)},
			{"order_growth_pct", Percent(s.OrderGrowth)},
			{"stock_alerts", strconv.Itoa(len(r.Alerts.Stock))},
			{"expiry_alerts", strconv.Itoa(len(r.Alerts.Expiry))},
		},
	}
}

func optDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func optInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
