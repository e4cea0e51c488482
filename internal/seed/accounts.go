package seed

import "github.com/shopbook-dev/shopbook/internal/model"

// Accounts returns the shop's chart of accounts.
func Accounts() []model.Account {
	const (
		asset     = model.AccountTypeAsset
		liability = model.AccountTypeLiability
		equity    = model.AccountTypeEquity
		revenue   = model.AccountTypeRevenue
		expense   = model.AccountTypeExpense
	)
	return []model.Account{
		{ID: "1010", Name: "Cash on Hand", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("1250.75"), Description: "Physical cash in the register."},
		{ID: "1020", Name: "Main Business Bank Account", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("0"), Description: "Primary bank accounts for operations."},
		{ID: "1021", ParentID: "1020", Name: "Checking Account", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("18480.50"), Description: "Day-to-day transaction account."},
		{ID: "1022", ParentID: "1020", Name: "Savings Account", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("7000.00"), Description: "Business savings and reserve funds."},
		{ID: "1200", Name: "Accounts Receivable", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("2150.00"), Description: "Money owed by customers."},
		{ID: "1400", Name: "Inventory", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("125400.00"), Description: "Value of all products in stock."},
		{ID: "1500", Name: "Prepaid Rent", Type: asset, SubType: model.SubTypeCurrentAsset, Balance: amt("2500.00"), Description: "Rent paid in advance."},
		{ID: "1800", Name: "Store Equipment", Type: asset, SubType: model.SubTypeFixedAsset, Balance: amt("15000.00"), Description: "Display cases, computers, tools."},

		{ID: "2000", Name: "Accounts Payable", Type: liability, SubType: model.SubTypeCurrentLiability, Balance: amt("14245.00"), Description: "Money owed to suppliers."},
		{ID: "2100", Name: "Sales Tax Payable", Type: liability, SubType: model.SubTypeCurrentLiability, Balance: amt("1850.25"), Description: "Sales tax collected, to be paid to government."},
		{ID: "2500", Name: "Short-Term Loan", Type: liability, SubType: model.SubTypeCurrentLiability, Balance: amt("10000.00"), Description: "Loan for initial inventory purchase."},

		{ID: "3000", Name: "Owner's Capital", Type: equity, SubType: "Owner's Equity", Balance: amt("100000.00"), Description: "Initial investment by the owner."},
		{ID: "3200", Name: "Retained Earnings", Type: equity, SubType: "Owner's Equity", Balance: amt("46186.00"), Description: "Cumulative profits reinvested in the business."},

		{ID: "4000", Name: "Product Sales Revenue", Type: revenue, SubType: "Sales", Balance: amt("350200.00"), Description: "Revenue from selling phones and accessories."},
		{ID: "4100", Name: "Repair Services Revenue", Type: revenue, SubType: "Services", Balance: amt("45300.00"), Description: "Revenue from repair services."},
		{ID: "4900", Name: "Sales Returns and Allowances", Type: revenue, SubType: "Contra Revenue", Balance: amt("-2500.00"), Description: "Reductions in revenue due to returns."},

		{ID: "5000", Name: "Cost of Goods Sold (COGS)", Type: expense, SubType: model.SubTypeDirectCosts, Balance: amt("210120.00"), Description: "Cost of inventory sold."},
		{ID: "6010", Name: "Rent Expense", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("30000.00"), Description: "Annual rent for the store."},
		{ID: "6020", Name: "Salaries and Wages", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("0"), Description: "Total employee salaries."},
		{ID: "6021", ParentID: "6020", Name: "Sales Staff Salaries", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("50000.00"), Description: "Salaries for the sales team."},
		{ID: "6022", ParentID: "6020", Name: "Admin Staff Salaries", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("25000.00"), Description: "Salaries for administrative staff."},
		{ID: "6030", Name: "Utilities Expense", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("4120.00"), Description: "Electricity, water, internet."},
		{ID: "6040", Name: "Marketing and Advertising", Type: expense, SubType: model.SubTypeOperatingExpense, Balance: amt("6000.00"), Description: "Promotional expenses."},
	}
}
