package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the collection state of a sale.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

// Sale is an order in the sales book.
type Sale struct {
	ID            string
	Date          time.Time
	Customer      string
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
	Items         int
}
