// Package ledger covers money owed by and to the shop: supplier invoices
// (payables) and customer orders awaiting payment (receivables), plus the
// purchase and sales book filters.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// Balance summarizes an outstanding set.
type Balance struct {
	Total        decimal.Decimal
	Overdue      decimal.Decimal
	Count        int
	OverdueCount int
}

// Payables is the list of unpaid supplier invoices.
type Payables struct {
	Purchases []model.Purchase
	Balance
}

// NewPayables keeps purchases that are Unpaid or Overdue and match search
// in any field.
func NewPayables(purchases []model.Purchase, search string) Payables {
	open := query.Filter(purchases, func(p model.Purchase) bool { return p.Status.Outstanding() })
	open = query.SearchAll(open, search)

	p := Payables{Purchases: open, Balance: Balance{Total: decimal.Zero, Overdue: decimal.Zero}}
	for _, pur := range open {
		p.Total = p.Total.Add(pur.Total)
		p.Count++
		if pur.Status == model.PurchaseOverdue {
			p.Overdue = p.Overdue.Add(pur.Total)
			p.OverdueCount++
		}
	}
	return p
}

// Receivables is the list of customer orders not yet collected.
type Receivables struct {
	Sales []model.Sale
	Balance
}

// NewReceivables keeps sales that are Pending or Overdue and match search
// in any field.
func NewReceivables(sales []model.Sale, search string) Receivables {
	open := query.Filter(sales, func(s model.Sale) bool {
		return s.PaymentStatus == model.PaymentPending || s.PaymentStatus == model.PaymentOverdue
	})
	open = query.SearchAll(open, search)

	r := Receivables{Sales: open, Balance: Balance{Total: decimal.Zero, Overdue: decimal.Zero}}
	for _, s := range open {
		r.Total = r.Total.Add(s.Total)
		r.Count++
		if s.PaymentStatus == model.PaymentOverdue {
			r.Overdue = r.Overdue.Add(s.Total)
			r.OverdueCount++
		}
	}
	return r
}
