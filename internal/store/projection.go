package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/dependency"
	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
)

type projectionStore struct {
	*MYSQLStore
}

// Projection returns the read-only analytics view of the store.
func (ms *MYSQLStore) Projection() dependency.Projection {
	return &projectionStore{MYSQLStore: ms}
}

const saleColumns = `
	s.id, s.invoice_number, s.total, s.status, s.created_at, s.customer_id,
	c.full_name AS customer_name`

func (ps *projectionStore) SalesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleRecord, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		LEFT JOIN customers c ON s.customer_id = c.id
		WHERE s.created_at >= :from AND s.created_at <= :to
		ORDER BY s.created_at, s.id
	`
	sales, err := listWithRetry[entity.SaleRecord](ctx, ps.MYSQLStore, query, windowParams(w))
	if err != nil {
		return nil, gerr.Fetch("sales", err)
	}
	if err := checkSales(sales, w); err != nil {
		return nil, gerr.Fetch("sales", err)
	}
	return sales, nil
}

func (ps *projectionStore) SaleLinesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleLine, error) {
	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price,
			s.status AS sale_status, s.created_at AS sale_created_at,
			p.name AS product_name, p.stock_quantity
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.id
		JOIN products p ON si.product_id = p.id
		WHERE s.created_at >= :from AND s.created_at <= :to
		ORDER BY s.created_at, s.id, si.id
	`
	lines, err := listWithRetry[entity.SaleLine](ctx, ps.MYSQLStore, query, windowParams(w))
	if err != nil {
		return nil, gerr.Fetch("sale_items", err)
	}
	for _, l := range lines {
		if !entity.ValidSaleStatuses[l.SaleStatus] {
			return nil, gerr.Fetch("sale_items", fmt.Errorf("sale %s has unknown status %q", l.SaleID, l.SaleStatus))
		}
		if l.Quantity < 0 {
			return nil, gerr.Fetch("sale_items", fmt.Errorf("line %s has negative quantity", l.ID))
		}
	}
	return lines, nil
}

func (ps *projectionStore) Customers(ctx context.Context) ([]entity.Customer, error) {
	query := `
		SELECT id, document_number, full_name, created_at
		FROM customers
		ORDER BY id
	`
	customers, err := listWithRetry[entity.Customer](ctx, ps.MYSQLStore, query, map[string]any{})
	if err != nil {
		return nil, gerr.Fetch("customers", err)
	}
	return customers, nil
}

func (ps *projectionStore) CustomerSalesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleRecord, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN customers c ON s.customer_id = c.id
		WHERE s.customer_id IS NOT NULL
		AND s.created_at >= :from AND s.created_at <= :to
		ORDER BY s.created_at, s.id
	`
	sales, err := listWithRetry[entity.SaleRecord](ctx, ps.MYSQLStore, query, windowParams(w))
	if err != nil {
		return nil, gerr.Fetch("customer_sales", err)
	}
	if err := checkSales(sales, w); err != nil {
		return nil, gerr.Fetch("customer_sales", err)
	}
	return sales, nil
}

func (ps *projectionStore) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, code, name, stock_quantity, min_stock, price
		FROM products
		WHERE stock_quantity <= min_stock
		ORDER BY stock_quantity, name, id
	`
	products, err := listWithRetry[entity.Product](ctx, ps.MYSQLStore, query, map[string]any{})
	if err != nil {
		return nil, gerr.Fetch("products", err)
	}
	return products, nil
}

// ExpiringLots compares plain dates, so from and to are reduced to their
// calendar day in their own location before querying.
func (ps *projectionStore) ExpiringLots(ctx context.Context, from, to time.Time) ([]entity.LotRow, error) {
	query := `
		SELECT pl.id, pl.product_id, pl.lot_number, pl.expiry_date, pl.quantity,
			p.name AS product_name, p.stock_quantity, p.min_stock
		FROM product_lots pl
		JOIN products p ON pl.product_id = p.id
		WHERE pl.expiry_date IS NOT NULL
		AND pl.expiry_date >= :from AND pl.expiry_date <= :to
		AND pl.quantity > 0
		ORDER BY pl.expiry_date, p.name, pl.lot_number, pl.id
	`
	lots, err := listWithRetry[entity.LotRow](ctx, ps.MYSQLStore, query, map[string]any{
		"from": from.Format(time.DateOnly),
		"to":   to.Format(time.DateOnly),
	})
	if err != nil {
		return nil, gerr.Fetch("product_lots", err)
	}
	return lots, nil
}

func (ps *projectionStore) CatalogCounts(ctx context.Context) (entity.CatalogCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM customers) AS total_customers
	`
	counts, err := QueryNamedOne[entity.CatalogCounts](ctx, ps.DB(), query, map[string]any{})
	if err != nil {
		return entity.CatalogCounts{}, gerr.Fetch("catalog_counts", err)
	}
	return counts, nil
}

func windowParams(w entity.TimeWindow) map[string]any {
	return map[string]any{"from": w.Start, "to": w.End}
}

// listWithRetry runs a list query once more when the first attempt lost a
// lock race.
func listWithRetry[T any](ctx context.Context, ms *MYSQLStore, query string, params map[string]any) ([]T, error) {
	rows, err := QueryListNamed[T](ctx, ms.DB(), query, params)
	if err != nil && ms.IsErrorRepeat(err) {
		rows, err = QueryListNamed[T](ctx, ms.DB(), query, params)
	}
	return rows, err
}

// checkSales rejects rows with an unknown status or a creation time outside
// the requested window.
func checkSales(sales []entity.SaleRecord, w entity.TimeWindow) error {
	for _, s := range sales {
		if !entity.ValidSaleStatuses[s.Status] {
			return fmt.Errorf("sale %s has unknown status %q", s.ID, s.Status)
		}
		if !w.Contains(s.CreatedAt) {
			return fmt.Errorf("sale %s created at %s is outside [%s, %s]",
				s.ID, s.CreatedAt.Format(time.RFC3339), w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
		}
	}
	return nil
}
