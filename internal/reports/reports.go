// Package reports builds the financial statements from the chart of accounts
// and the cash flow activity list.
//
// Account amounts are rollup display values: a parent account shows the sum
// of its sub-accounts and its own balance is ignored.
package reports

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/rollup"
)

var (
	hundred   = decimal.NewFromInt(100)
	tolerance = decimal.New(1, -2)
)

// Line is a top-level account in a statement section.
type Line struct {
	Account  model.Account
	Amount   decimal.Decimal
	Children []model.Account
}

// Section is a titled block of lines with its total.
type Section struct {
	Title string
	Lines []Line
	Total decimal.Decimal
}

func newSection(title string, accts []model.Account) Section {
	tree := rollup.New(accts, accounts.Rollup)
	s := Section{Title: title, Total: tree.Total()}
	for _, r := range tree.Rows() {
		s.Lines = append(s.Lines, Line{Account: r.Item, Amount: r.Value, Children: r.Children})
	}
	return s
}

func filter(accts []model.Account, keep func(model.Account) bool) []model.Account {
	var out []model.Account
	for _, a := range accts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func ofType(accts []model.Account, t model.AccountType) []model.Account {
	return filter(accts, func(a model.Account) bool { return a.Type == t })
}

func total(accts []model.Account) decimal.Decimal {
	return rollup.New(accts, accounts.Rollup).Total()
}

// percent returns part/whole × 100, or zero when whole is not positive.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
