package analytics

import (
	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultGrowthWindow is the number of series entries compared at each end.
const DefaultGrowthWindow = 7

var hundred = decimal.NewFromInt(100)

// Growth compares the sum of the first n values (baseline) with the sum of
// the last n values (current) and returns the percentage change. Shorter
// series let the two slices overlap. A zero baseline yields zero.
func Growth(values []decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		n = DefaultGrowthWindow
	}
	k := n
	if len(values) < k {
		k = len(values)
	}
	baseline := sum(values[:k])
	current := sum(values[len(values)-k:])
	if !baseline.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(baseline).Div(baseline).Mul(hundred)
}

// SalesGrowth applies Growth to the daily sales totals.
func SalesGrowth(series []entity.DailySalesPoint, n int) decimal.Decimal {
	values := make([]decimal.Decimal, len(series))
	for i, p := range series {
		values[i] = p.TotalSales
	}
	return Growth(values, n)
}

// OrderGrowth applies Growth to the daily order counts.
func OrderGrowth(series []entity.DailySalesPoint, n int) decimal.Decimal {
	values := make([]decimal.Decimal, len(series))
	for i, p := range series {
		values[i] = decimal.NewFromInt(int64(p.OrderCount))
	}
	return Growth(values, n)
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
