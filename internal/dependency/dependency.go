package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --name Projection --output=./mocks
type (
	// Projection is the read-only view of the pharmacy tables the report
	// engine consumes. Implementations return every failure as a
	// gerr.DataFetchError; an empty result set is not an error.
	Projection interface {
		// SalesInWindow returns sales of every status created within w,
		// ordered by creation time.
		SalesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleRecord, error)
		// SaleLinesInWindow returns the line items of sales created within w
		// joined with sale status and product display fields.
		SaleLinesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleLine, error)
		// Customers returns every registered customer.
		Customers(ctx context.Context) ([]entity.Customer, error)
		// CustomerSalesInWindow returns sales within w that reference a customer.
		CustomerSalesInWindow(ctx context.Context, w entity.TimeWindow) ([]entity.SaleRecord, error)
		// LowStockProducts returns products whose stock is at or below their minimum.
		LowStockProducts(ctx context.Context) ([]entity.Product, error)
		// ExpiringLots returns stocked lots with an expiry date within [from, to].
		ExpiringLots(ctx context.Context, from, to time.Time) ([]entity.LotRow, error)
		CatalogCounts(ctx context.Context) (entity.CatalogCounts, error)
	}

	Repository interface {
		Projection() Projection
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
