package reports

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/rollup"
)

// BalanceSheet lists assets by sub-type against liabilities and equity.
type BalanceSheet struct {
	Assets                    []Section // one per sub-type, in chart order
	TotalAssets               decimal.Decimal
	Liabilities               Section
	Equity                    Section
	TotalLiabilitiesAndEquity decimal.Decimal
}

// NewBalanceSheet builds the balance sheet from the chart of accounts.
func NewBalanceSheet(accts []model.Account) *BalanceSheet {
	assets := ofType(accts, model.AccountTypeAsset)

	var subTypes []string
	seen := make(map[string]bool)
	for _, a := range assets {
		if !seen[a.SubType] {
			seen[a.SubType] = true
			subTypes = append(subTypes, a.SubType)
		}
	}

	bs := &BalanceSheet{
		Liabilities: newSection("Liabilities", ofType(accts, model.AccountTypeLiability)),
		Equity:      newSection("Equity", ofType(accts, model.AccountTypeEquity)),
	}

	bs.TotalAssets = decimal.Zero
	groups := rollup.GroupBy(assets, func(a model.Account) string { return a.SubType }, subTypes, accounts.Rollup)
	for _, g := range groups {
		s := Section{Title: g.Key, Total: g.Total}
		for _, r := range g.Tree.Rows() {
			s.Lines = append(s.Lines, Line{Account: r.Item, Amount: r.Value, Children: r.Children})
		}
		bs.Assets = append(bs.Assets, s)
		bs.TotalAssets = bs.TotalAssets.Add(g.Total)
	}

	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	return bs
}

// Difference is total assets minus total liabilities and equity.
func (b *BalanceSheet) Difference() decimal.Decimal {
	return b.TotalAssets.Sub(b.TotalLiabilitiesAndEquity)
}

// Balanced reports whether both sides agree to within a cent.
func (b *BalanceSheet) Balanced() bool {
	return b.Difference().Abs().LessThan(tolerance)
}

// AssetSubTotal returns the total of one asset sub-type, zero when absent.
func (b *BalanceSheet) AssetSubTotal(subType string) decimal.Decimal {
	for _, s := range b.Assets {
		if s.Title == subType {
			return s.Total
		}
	}
	return decimal.Zero
}
