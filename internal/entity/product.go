package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the products table as seen by the analytics engine.
type Product struct {
	ID           string          `db:"id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	CurrentStock int             `db:"stock_quantity"`
	MinStock     int             `db:"min_stock"`
	Price        decimal.Decimal `db:"price"`
}

// ProductLot represents the product_lots table. Lots without an expiry date
// carry an invalid ExpiryDate and never take part in expiry analytics.
type ProductLot struct {
	ID         string       `db:"id"`
	ProductID  string       `db:"product_id"`
	LotNumber  string       `db:"lot_number"`
	ExpiryDate sql.NullTime `db:"expiry_date"`
	Quantity   int          `db:"quantity"`
}

// HasExpiry reports whether the lot is expiry dated.
func (l ProductLot) HasExpiry() bool {
	return l.ExpiryDate.Valid && !l.ExpiryDate.Time.IsZero()
}

// LotRow is a product lot joined with the owning product's display fields.
type LotRow struct {
	ProductLot
	ProductName  string `db:"product_name"`
	CurrentStock int    `db:"stock_quantity"`
	MinStock     int    `db:"min_stock"`
}

// CatalogCounts holds the dashboard headline counters.
type CatalogCounts struct {
	TotalProducts  int `db:"total_products"`
	TotalCustomers int `db:"total_customers"`
}

// Customer represents the customers table.
type Customer struct {
	ID             string    `db:"id"`
	DocumentNumber string    `db:"document_number"`
	FullName       string    `db:"full_name"`
	CreatedAt      time.Time `db:"created_at"`
}
