package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale; only completed sales count.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
	SaleRefunded  SaleStatus = "refunded"
)

// ValidSaleStatuses is a map containing all the valid sale statuses.
var ValidSaleStatuses = map[SaleStatus]bool{
	SaleCompleted: true,
	SaleCancelled: true,
	SaleRefunded:  true,
}

// Counts reports whether a sale with this status contributes to revenue.
func (s SaleStatus) Counts() bool {
	return s == SaleCompleted
}

// SaleRecord represents the sales table. CustomerName is filled only by
// projections that join the customers table.
type SaleRecord struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	Total         decimal.Decimal `db:"total"`
	Status        SaleStatus      `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	CustomerID    sql.NullString  `db:"customer_id"`
	CustomerName  sql.NullString  `db:"customer_name"`
}

// SaleLineItem represents the sale_items table.
type SaleLineItem struct {
	ID        string          `db:"id"`
	SaleID    string          `db:"sale_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

// Revenue returns quantity x unit price.
func (li SaleLineItem) Revenue() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SaleLine is a line item joined with its sale's status and timestamp and
// the product's live display fields.
type SaleLine struct {
	SaleLineItem
	SaleStatus   SaleStatus `db:"sale_status"`
	SaleAt       time.Time  `db:"sale_created_at"`
	ProductName  string     `db:"product_name"`
	CurrentStock int        `db:"stock_quantity"`
}
