package analytics

import (
	"sort"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultTopN is how many rows a ranking keeps unless configured otherwise.
const DefaultTopN = 10

// CompletedTotals sums the totals of completed sales and counts them.
func CompletedTotals(sales []entity.SaleRecord) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, s := range sales {
		if !s.Status.Counts() {
			continue
		}
		total = total.Add(s.Total)
		count++
	}
	return total, count
}

// DailySeries groups completed sales by calendar date in loc. Days without
// sales are not synthesized. The result is ordered by date ascending.
func DailySeries(sales []entity.SaleRecord, loc *time.Location) []entity.DailySalesPoint {
	if loc == nil {
		loc = time.Local
	}
	idx := make(map[string]int)
	points := []entity.DailySalesPoint{}
	for _, s := range sales {
		if !s.Status.Counts() {
			continue
		}
		day := StartOfDay(s.CreatedAt.In(loc))
		key := day.Format("2006-01-02")
		i, ok := idx[key]
		if !ok {
			i = len(points)
			idx[key] = i
			points = append(points, entity.DailySalesPoint{Date: day, TotalSales: decimal.Zero})
		}
		points[i].TotalSales = points[i].TotalSales.Add(s.Total)
		points[i].OrderCount++
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// TopProducts ranks products by revenue over the line items of completed
// sales. Products without matching lines are omitted. Equal revenue keeps
// the order in which products were first seen.
func TopProducts(lines []entity.SaleLine, topN int) []entity.ProductPerformance {
	idx := make(map[string]int)
	perf := []entity.ProductPerformance{}
	for _, l := range lines {
		if !l.SaleStatus.Counts() {
			continue
		}
		i, ok := idx[l.ProductID]
		if !ok {
			i = len(perf)
			idx[l.ProductID] = i
			perf = append(perf, entity.ProductPerformance{
				ProductID:    l.ProductID,
				ProductName:  l.ProductName,
				Revenue:      decimal.Zero,
				CurrentStock: l.CurrentStock,
			})
		}
		perf[i].UnitsSold += l.Quantity
		perf[i].Revenue = perf[i].Revenue.Add(l.Revenue())
	}
	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Revenue.GreaterThan(perf[j].Revenue)
	})
	return truncate(perf, topN)
}

// TopCustomers summarizes completed sales per customer and ranks by amount
// spent. Every customer in customers is summarized, including those without
// sales in scope; sales of customers missing from the list are appended in
// the order they are first seen.
func TopCustomers(customers []entity.Customer, sales []entity.SaleRecord, topN int) []entity.CustomerSummary {
	idx := make(map[string]int, len(customers))
	sums := make([]entity.CustomerSummary, 0, len(customers))
	add := func(id, name string) int {
		idx[id] = len(sums)
		sums = append(sums, entity.CustomerSummary{
			CustomerID:   id,
			CustomerName: name,
			TotalSpent:   decimal.Zero,
		})
		return idx[id]
	}
	for _, c := range customers {
		if _, ok := idx[c.ID]; ok {
			continue
		}
		add(c.ID, c.FullName)
	}

	for _, s := range sales {
		if !s.Status.Counts() || !s.CustomerID.Valid {
			continue
		}
		i, ok := idx[s.CustomerID.String]
		if !ok {
			i = add(s.CustomerID.String, s.CustomerName.String)
		}
		cs := &sums[i]
		cs.PurchaseCount++
		cs.TotalSpent = cs.TotalSpent.Add(s.Total)
		if cs.LastPurchaseDate == nil || s.CreatedAt.After(*cs.LastPurchaseDate) {
			at := s.CreatedAt
			cs.LastPurchaseDate = &at
		}
	}

	sort.SliceStable(sums, func(i, j int) bool {
		return sums[i].TotalSpent.GreaterThan(sums[j].TotalSpent)
	})
	return truncate(sums, topN)
}

func truncate[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
