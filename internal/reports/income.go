package reports

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/rollup"
)

// IncomeStatement is revenue less cost of goods sold and operating expenses.
type IncomeStatement struct {
	Revenue           Section
	COGS              Line
	GrossProfit       decimal.Decimal
	OperatingExpenses Section
	NetIncome         decimal.Decimal
}

// NewIncomeStatement builds the income statement. COGS is the first expense
// account with the Direct Costs sub-type; every other expense account is an
// operating expense.
func NewIncomeStatement(accts []model.Account) *IncomeStatement {
	expenses := ofType(accts, model.AccountTypeExpense)
	direct := filter(expenses, func(a model.Account) bool { return a.SubType == model.SubTypeDirectCosts })
	opex := filter(expenses, func(a model.Account) bool { return a.SubType != model.SubTypeDirectCosts })

	is := &IncomeStatement{
		Revenue:           newSection("Revenue", ofType(accts, model.AccountTypeRevenue)),
		COGS:              Line{Account: model.Account{Name: "Cost of Goods Sold"}, Amount: decimal.Zero},
		OperatingExpenses: newSection("Operating Expenses", opex),
	}
	if len(direct) > 0 {
		tree := rollup.New(direct, accounts.Rollup)
		is.COGS = Line{Account: direct[0], Amount: tree.Display(direct[0]), Children: tree.Children(direct[0].ID)}
	}

	is.GrossProfit = is.Revenue.Total.Sub(is.COGS.Amount)
	is.NetIncome = is.GrossProfit.Sub(is.OperatingExpenses.Total)
	return is
}

// ProfitLoss is the headline view of the income statement.
type ProfitLoss struct {
	Revenue           decimal.Decimal
	COGS              decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetIncome         decimal.Decimal
	GrossMargin       decimal.Decimal // percent
	NetMargin         decimal.Decimal // percent
}

// NewProfitLoss derives margins from the income statement. Margins are zero
// when revenue is not positive.
func NewProfitLoss(accts []model.Account) ProfitLoss {
	is := NewIncomeStatement(accts)
	return ProfitLoss{
		Revenue:           is.Revenue.Total,
		COGS:              is.COGS.Amount,
		GrossProfit:       is.GrossProfit,
		OperatingExpenses: is.OperatingExpenses.Total,
		NetIncome:         is.NetIncome,
		GrossMargin:       percent(is.GrossProfit, is.Revenue.Total),
		NetMargin:         percent(is.NetIncome, is.Revenue.Total),
	}
}

// COGSDelta is the step from revenue to gross profit.
func (p ProfitLoss) COGSDelta() decimal.Decimal {
	return p.Revenue.Sub(p.GrossProfit)
}

// OperatingDelta is the step from gross profit to net income.
func (p ProfitLoss) OperatingDelta() decimal.Decimal {
	return p.GrossProfit.Sub(p.NetIncome)
}
