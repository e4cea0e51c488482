package inventory

import (
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// Stock levels shown next to a product's unit count.
const (
	StockHigh   = "high"
	StockMedium = "medium"
	StockLow    = "low"
)

// ProductSortKeys are the sortable product columns.
var ProductSortKeys = query.Keys[model.Product]{
	"no":       func(p model.Product) any { return p.ProductNo },
	"name":     func(p model.Product) any { return p.Name },
	"brand":    func(p model.Product) any { return p.Brand },
	"category": func(p model.Product) any { return p.Category },
	"cost":     func(p model.Product) any { return p.CostPrice },
	"price":    func(p model.Product) any { return p.SellingPrice },
	"stock":    func(p model.Product) any { return p.Stock },
}

// SearchProducts keeps the products where any field, variations included,
// contains term.
func SearchProducts(products []model.Product, term string) []model.Product {
	return query.SearchAll(products, term)
}

// FindProduct returns the product with the given SKU or product number.
func FindProduct(products []model.Product, ref string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == ref || p.ProductNo == ref {
			return p, true
		}
	}
	return model.Product{}, false
}

// StockLevel buckets a unit count: above 50 is high, above 10 medium.
func StockLevel(stock int) string {
	switch {
	case stock > 50:
		return StockHigh
	case stock > 10:
		return StockMedium
	default:
		return StockLow
	}
}
