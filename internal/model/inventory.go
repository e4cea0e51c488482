package model

import "github.com/shopspring/decimal"

// ProductCategory classifies stock items.
type ProductCategory string

const (
	CategoryPhone      ProductCategory = "Phone"
	CategoryAccessory  ProductCategory = "Accessory"
	CategoryRepairPart ProductCategory = "Repair Part"
	CategoryTablet     ProductCategory = "Tablet"
)

// InventoryItem is a stock line at a location.
type InventoryItem struct {
	ID           string
	ProductName  string
	SKU          string
	Category     ProductCategory
	Quantity     int
	Location     string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}

// Variations describes the distinguishing attributes of a product.
type Variations struct {
	RAM          string
	Storage      string
	Color        string
	Generation   string
	ModelCode    string
	YearReleased string
	Country      string
	Condition    string
	Others       string
}

// Product is a catalog entry. ID is the SKU, ProductNo the sequential number.
type Product struct {
	ID           string
	ProductNo    string
	Name         string
	Brand        string
	Model        string
	Category     ProductCategory
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Stock        int
	Variations   Variations
}

// VariationAttribute is a configurable attribute with its allowed values.
type VariationAttribute struct {
	ID     string
	Name   string
	Values []string
}
