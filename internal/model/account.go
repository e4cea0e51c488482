package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// AccountTypes lists account types in statement order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}
	return false
}

// Well-known sub-types used by the financial statements.
const (
	SubTypeCurrentAsset     = "Current Asset"
	SubTypeFixedAsset       = "Fixed Asset"
	SubTypeCurrentLiability = "Current Liability"
	SubTypeDirectCosts      = "Direct Costs"
	SubTypeOperatingExpense = "Operating Expense"
)

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	ID          string
	ParentID    string // "" = top-level
	Name        string
	Type        AccountType
	SubType     string
	Balance     decimal.Decimal
	Description string
}

// IsChild reports whether the account has a parent.
func (a Account) IsChild() bool {
	return a.ParentID != ""
}
