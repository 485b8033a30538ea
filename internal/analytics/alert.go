package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
)

// DefaultExpiryHorizonDays is how far ahead lots are flagged as expiring.
const DefaultExpiryHorizonDays = 30

// ClassifyStock labels a product as out of stock or low stock. An exact zero
// is out of stock even when the minimum is zero too.
func ClassifyStock(p entity.Product) (entity.AlertKind, bool) {
	switch {
	case p.CurrentStock <= 0:
		return entity.AlertOutOfStock, true
	case p.CurrentStock <= p.MinStock:
		return entity.AlertLowStock, true
	default:
		return "", false
	}
}

// DaysUntilExpiry counts calendar days from now to the lot's expiry date.
// The second value is false for lots without an expiry date.
func DaysUntilExpiry(lot entity.ProductLot, now time.Time) (int, bool) {
	if !lot.HasExpiry() {
		return 0, false
	}
	return CalendarDaysBetween(now, lot.ExpiryDate.Time), true
}

// IsExpiringSoon reports whether a lot still holds stock and expires within
// (0, horizonDays] days of now. Already expired lots are not included.
func IsExpiringSoon(lot entity.ProductLot, now time.Time, horizonDays int) (int, bool) {
	if lot.Quantity <= 0 {
		return 0, false
	}
	days, ok := DaysUntilExpiry(lot, now)
	if !ok || days <= 0 || days > horizonDays {
		return 0, false
	}
	return days, true
}

// StockAlerts returns the stock classification of every flagged product,
// out of stock first, then by current stock, name and id.
func StockAlerts(products []entity.Product) []entity.StockAlert {
	alerts := []entity.StockAlert{}
	for _, p := range products {
		kind, ok := ClassifyStock(p)
		if !ok {
			continue
		}
		alerts = append(alerts, entity.StockAlert{
			Kind:         kind,
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Kind != b.Kind {
			return a.Kind == entity.AlertOutOfStock
		}
		if a.CurrentStock != b.CurrentStock {
			return a.CurrentStock < b.CurrentStock
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		return a.ProductID < b.ProductID
	})
	return alerts
}

// ExpiryAlerts returns one alert per lot expiring within the horizon,
// soonest first, then by product name, lot number and lot id.
func ExpiryAlerts(lots []entity.LotRow, now time.Time, horizonDays int) []entity.StockAlert {
	alerts := []entity.StockAlert{}
	for _, l := range lots {
		days, ok := IsExpiringSoon(l.ProductLot, now, horizonDays)
		if !ok {
			continue
		}
		expiry := l.ExpiryDate.Time
		alerts = append(alerts, entity.StockAlert{
			Kind:            entity.AlertExpiringSoon,
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			CurrentStock:    l.CurrentStock,
			MinStock:        l.MinStock,
			LotID:           l.ID,
			LotNumber:       l.LotNumber,
			LotQuantity:     l.Quantity,
			ExpiryDate:      &expiry,
			DaysUntilExpiry: &days,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if *a.DaysUntilExpiry != *b.DaysUntilExpiry {
			return *a.DaysUntilExpiry < *b.DaysUntilExpiry
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.LotNumber != b.LotNumber {
			return a.LotNumber < b.LotNumber
		}
		return a.LotID < b.LotID
	})
	return alerts
}

// Classify computes the stock and expiry alert sets independently; a product
// may appear in both.
func Classify(products []entity.Product, lots []entity.LotRow, now time.Time, horizonDays int) (entity.AlertSets, error) {
	if horizonDays <= 0 {
		return entity.AlertSets{}, fmt.Errorf("%w: %d days", gerr.ErrInvalidHorizon, horizonDays)
	}
	return entity.AlertSets{
		Stock:  StockAlerts(products),
		Expiry: ExpiryAlerts(lots, now, horizonDays),
	}, nil
}
