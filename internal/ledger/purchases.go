package ledger

import (
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// PurchaseSortKeys are the sortable purchase columns.
var PurchaseSortKeys = query.Keys[model.Purchase]{
	"date":     func(p model.Purchase) any { return p.Date },
	"id":       func(p model.Purchase) any { return p.ID },
	"supplier": func(p model.Purchase) any { return p.Supplier },
	"invoice":  func(p model.Purchase) any { return p.InvoiceID },
	"items":    func(p model.Purchase) any { return len(p.LineItems) },
	"total":    func(p model.Purchase) any { return p.Total },
	"status":   func(p model.Purchase) any { return p.Status },
}

// PurchaseFilter narrows the purchase list. Zero fields do not filter.
type PurchaseFilter struct {
	Search string // supplier, invoice, purchase ID, line item name or product ID
	Status model.PurchaseStatus
}

// Apply returns the purchases that pass the filter, in input order.
func (f PurchaseFilter) Apply(purchases []model.Purchase) []model.Purchase {
	return query.Filter(purchases, func(p model.Purchase) bool {
		if f.Status != "" && p.Status != f.Status {
			return false
		}
		return matchesPurchase(p, f.Search)
	})
}

func matchesPurchase(p model.Purchase, term string) bool {
	if query.Contains(term, p.Supplier, p.InvoiceID, p.ID) {
		return true
	}
	for _, li := range p.LineItems {
		if query.Contains(term, li.ProductName, li.ProductID) {
			return true
		}
	}
	return false
}

// FindPurchase returns the purchase with the given ID or invoice number.
func FindPurchase(purchases []model.Purchase, ref string) (model.Purchase, bool) {
	for _, p := range purchases {
		if p.ID == ref || p.InvoiceID == ref {
			return p, true
		}
	}
	return model.Purchase{}, false
}
