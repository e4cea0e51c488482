// Package inventory covers stock lines, the product catalog, variation
// attributes and stock transfers between branches.
package inventory

import (
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// DefaultLowStockThreshold is the quantity below which an item is flagged.
const DefaultLowStockThreshold = 20

// ItemSortKeys are the sortable inventory columns.
var ItemSortKeys = query.Keys[model.InventoryItem]{
	"id":       func(i model.InventoryItem) any { return i.ID },
	"name":     func(i model.InventoryItem) any { return i.ProductName },
	"sku":      func(i model.InventoryItem) any { return i.SKU },
	"category": func(i model.InventoryItem) any { return i.Category },
	"quantity": func(i model.InventoryItem) any { return i.Quantity },
	"location": func(i model.InventoryItem) any { return i.Location },
	"cost":     func(i model.InventoryItem) any { return i.CostPrice },
	"price":    func(i model.InventoryItem) any { return i.SellingPrice },
}

// Search keeps the items where any field contains term.
func Search(items []model.InventoryItem, term string) []model.InventoryItem {
	return query.SearchAll(items, term)
}

// LowStock returns the items whose quantity is below threshold.
func LowStock(items []model.InventoryItem, threshold int) []model.InventoryItem {
	return query.Filter(items, func(i model.InventoryItem) bool {
		return IsLow(i, threshold)
	})
}

// IsLow reports whether an item is below threshold.
func IsLow(item model.InventoryItem, threshold int) bool {
	return item.Quantity < threshold
}
