// Package directory holds the people and places the shop deals with:
// suppliers, contacts, staff, branches and tax rates.
package directory

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// SupplierSortKeys are the sortable supplier columns.
var SupplierSortKeys = query.Keys[model.Supplier]{
	"name":       func(s model.Supplier) any { return s.Name },
	"category":   func(s model.Supplier) any { return s.Category },
	"totalSpent": func(s model.Supplier) any { return s.TotalSpent },
}

// DefaultSupplierOrder lists suppliers alphabetically.
var DefaultSupplierOrder = query.Order{Key: "name", Direction: query.Asc}

// SearchSuppliers keeps suppliers whose name or contact person contains term.
func SearchSuppliers(suppliers []model.Supplier, term string) []model.Supplier {
	return query.Search(suppliers, term, func(s model.Supplier) []string {
		return []string{s.Name, s.ContactPerson}
	})
}

// TotalSpent sums spending across suppliers.
func TotalSpent(suppliers []model.Supplier) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range suppliers {
		sum = sum.Add(s.TotalSpent)
	}
	return sum
}

// FindSupplier returns the supplier with the given ID or exact name.
func FindSupplier(suppliers []model.Supplier, ref string) (model.Supplier, bool) {
	for _, s := range suppliers {
		if s.ID == ref || s.Name == ref {
			return s, true
		}
	}
	return model.Supplier{}, false
}
