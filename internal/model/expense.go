package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the payment state of an expense.
type ExpenseStatus string

const (
	ExpensePaid   ExpenseStatus = "Paid"
	ExpenseUnpaid ExpenseStatus = "Unpaid"
)

// Valid reports whether s is a known expense status.
func (s ExpenseStatus) Valid() bool {
	return s == ExpensePaid || s == ExpenseUnpaid
}

// Expense is a single expense. Sub-expenses reference their group through ParentID.
type Expense struct {
	ID       string
	ParentID string
	Date     time.Time
	Category string
	Payee    string
	Amount   decimal.Decimal
	Status   ExpenseStatus
}

// ExpenseCategoryGroup is an entry of the expense category catalog.
type ExpenseCategoryGroup struct {
	ID            string
	Name          string
	Subcategories []string
}
