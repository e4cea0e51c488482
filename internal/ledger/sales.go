package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// SaleSortKeys are the sortable sales book columns.
var SaleSortKeys = query.Keys[model.Sale]{
	"id":       func(s model.Sale) any { return s.ID },
	"date":     func(s model.Sale) any { return s.Date },
	"customer": func(s model.Sale) any { return s.Customer },
	"items":    func(s model.Sale) any { return s.Items },
	"total":    func(s model.Sale) any { return s.Total },
	"status":   func(s model.Sale) any { return s.PaymentStatus },
}

// DefaultSaleOrder shows the newest sales first.
var DefaultSaleOrder = query.Order{Key: "date", Direction: query.Desc}

// SaleFilter narrows the sales book. Zero fields do not filter; MinTotal and
// MaxTotal are ignored when nil.
type SaleFilter struct {
	OrderID  string
	Customer string
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
	Status   model.PaymentStatus
	From     time.Time // inclusive
	To       time.Time // inclusive
}

// Apply returns the sales that pass every criterion, in input order.
func (f SaleFilter) Apply(sales []model.Sale) []model.Sale {
	return query.Filter(sales, func(s model.Sale) bool {
		switch {
		case !query.Contains(f.OrderID, s.ID):
			return false
		case !query.Contains(f.Customer, s.Customer):
			return false
		case f.MinTotal != nil && s.Total.LessThan(*f.MinTotal):
			return false
		case f.MaxTotal != nil && s.Total.GreaterThan(*f.MaxTotal):
			return false
		case f.Status != "" && s.PaymentStatus != f.Status:
			return false
		case !f.From.IsZero() && s.Date.Before(f.From):
			return false
		case !f.To.IsZero() && s.Date.After(f.To):
			return false
		}
		return true
	})
}

// Recent returns the first n sales.
func Recent(sales []model.Sale, n int) []model.Sale {
	if n < len(sales) {
		return sales[:n]
	}
	return sales
}

// SalesTotal sums the order totals.
func SalesTotal(sales []model.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}
