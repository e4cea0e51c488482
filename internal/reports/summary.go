package reports

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/rollup"
)

// Slice is one entry of the expense breakdown.
type Slice struct {
	Name  string
	Value decimal.Decimal
}

// Summary is the key figures of the business.
type Summary struct {
	NetIncome        decimal.Decimal
	GrossMargin      decimal.Decimal // percent
	CurrentRatio     decimal.Decimal
	NetWorth         decimal.Decimal
	TotalRevenue     decimal.Decimal
	GrossProfit      decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	ExpenseBreakdown []Slice
}

// NewSummary computes the summary report.
func NewSummary(accts []model.Account) Summary {
	pl := NewProfitLoss(accts)
	liabilities := ofType(accts, model.AccountTypeLiability)

	currentAssets := total(filter(ofType(accts, model.AccountTypeAsset), func(a model.Account) bool {
		return a.SubType == model.SubTypeCurrentAsset
	}))
	currentLiabilities := total(filter(liabilities, func(a model.Account) bool {
		return a.SubType == model.SubTypeCurrentLiability
	}))

	s := Summary{
		NetIncome:        pl.NetIncome,
		GrossMargin:      pl.GrossMargin,
		CurrentRatio:     decimal.Zero,
		NetWorth:         total(ofType(accts, model.AccountTypeEquity)),
		TotalRevenue:     pl.Revenue,
		GrossProfit:      pl.GrossProfit,
		TotalAssets:      total(ofType(accts, model.AccountTypeAsset)),
		TotalLiabilities: total(liabilities),
	}
	if currentLiabilities.IsPositive() {
		s.CurrentRatio = currentAssets.Div(currentLiabilities)
	}

	opex := filter(ofType(accts, model.AccountTypeExpense), func(a model.Account) bool {
		return a.SubType != model.SubTypeDirectCosts
	})
	for _, r := range rollup.New(opex, accounts.Rollup).Rows() {
		s.ExpenseBreakdown = append(s.ExpenseBreakdown, Slice{Name: r.Item.Name, Value: r.Value})
	}
	return s
}
