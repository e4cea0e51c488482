package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus is the settlement state of a supplier invoice.
type PurchaseStatus string

const (
	PurchasePaid    PurchaseStatus = "Paid"
	PurchaseUnpaid  PurchaseStatus = "Unpaid"
	PurchaseOverdue PurchaseStatus = "Overdue"
)

// Valid reports whether s is a known purchase status.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePaid, PurchaseUnpaid, PurchaseOverdue:
		return true
	}
	return false
}

// Outstanding reports whether the invoice still has to be paid.
func (s PurchaseStatus) Outstanding() bool {
	return s == PurchaseUnpaid || s == PurchaseOverdue
}

// PurchaseLineItem is one product line of a purchase.
type PurchaseLineItem struct {
	ProductID   string
	ProductName string
	Unit        string
	Quantity    int
	Price       decimal.Decimal
}

// Amount returns quantity × price.
func (li PurchaseLineItem) Amount() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Purchase is a supplier invoice.
type Purchase struct {
	ID              string
	Date            time.Time
	Supplier        string
	SupplierContact string
	InvoiceID       string
	LineItems       []PurchaseLineItem
	ShippingCost    decimal.Decimal
	OtherFees       decimal.Decimal
	Total           decimal.Decimal // grand total
	Status          PurchaseStatus
}
