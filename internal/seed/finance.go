package seed

import "github.com/shopbook-dev/shopbook/internal/model"

// Expenses returns the expense book. EXP006 and EXP007 are sub-expenses of EXP004.
func Expenses() []model.Expense {
	return []model.Expense{
		{ID: "EXP001", Date: day(2023, 10, 28), Category: "Rent", Payee: "City Properties", Amount: amt("2500"), Status: model.ExpensePaid},
		{ID: "EXP002", Date: day(2023, 10, 27), Category: "Utilities", Payee: "Downtown Power & Light", Amount: amt("345.67"), Status: model.ExpensePaid},
		{ID: "EXP003", Date: day(2023, 10, 26), Category: "Supplies", Payee: "Office Supplies Co.", Amount: amt("125.50"), Status: model.ExpensePaid},
		{ID: "EXP004", Date: day(2023, 10, 25), Category: "Marketing", Payee: "", Amount: amt("0"), Status: model.ExpenseUnpaid},
		{ID: "EXP006", ParentID: "EXP004", Date: day(2023, 10, 25), Category: "Online Advertising", Payee: "Social Media Ads", Amount: amt("300"), Status: model.ExpenseUnpaid},
		{ID: "EXP007", ParentID: "EXP004", Date: day(2023, 10, 24), Category: "Marketing Tools", Payee: "Analytics Software Inc.", Amount: amt("200"), Status: model.ExpensePaid},
		{ID: "EXP005", Date: day(2023, 10, 22), Category: "Salaries", Payee: "Employee Payroll", Amount: amt("8500"), Status: model.ExpensePaid},
	}
}

// ExpenseCategories returns the expense category catalog.
func ExpenseCategories() []model.ExpenseCategoryGroup {
	return []model.ExpenseCategoryGroup{
		{ID: "inventory", Name: "Inventory & Product Costs", Subcategories: []string{
			"Purchase of smartphones (all brands and models)",
			"Accessories (chargers, cables, cases, screen protectors, headphones)",
			"Refurbished or second-hand phones (if applicable)",
			"Packaging materials",
		}},
		{ID: "rent", Name: "Rent & Utilities", Subcategories: []string{
			"Shop rent / lease",
			"Electricity",
			"Water",
			"Internet & phone line",
			"Security (guards or systems, if any)",
		}},
		{ID: "salaries", Name: "Salaries & Wages", Subcategories: []string{
			"Staff salaries (salespersons, technicians, support staff)",
			"Commissions / bonuses",
			"Payroll taxes & social contributions",
			"Training costs",
		}},
		{ID: "marketing", Name: "Marketing & Advertising", Subcategories: []string{
			"Online ads (Facebook, Instagram, TikTok)",
			"Google Ads / SEO services",
			"Flyers, posters, banners",
			"Promotions & discounts",
			"Branding (signboards, shop logo, stickers)",
		}},
		{ID: "operations", Name: "Shop Operations", Subcategories: []string{
			"Cash register / POS system",
			"Software subscriptions (inventory management, accounting apps)",
			"Cleaning & maintenance",
			"Security systems (CCTV, alarms)",
			"Stationery & office supplies",
		}},
		{ID: "repairs", Name: "Repairs & Services", Subcategories: []string{
			"Repair parts (screens, batteries, etc.)",
			"Technician tools & equipment",
			"Software updates & licenses",
			"Warranty services",
		}},
		{ID: "transport", Name: "Transportation & Logistics", Subcategories: []string{
			"Delivery fees (for customers or suppliers)",
			"Fuel or vehicle maintenance (if shop owns delivery vehicles)",
			"Courier services",
		}},
		{ID: "financial", Name: "Financial & Legal", Subcategories: []string{
			"Bank fees / transaction charges",
			"Accounting / bookkeeping fees",
			"Insurance (shop, inventory, liability)",
			"Licenses & permits",
			"Professional fees (legal, consultancy)",
		}},
		{ID: "misc", Name: "Miscellaneous", Subcategories: []string{
			"Employee welfare (tea, snacks, small perks)",
			"Office refreshments",
			"Contingency fund (unexpected expenses)",
		}},
	}
}

// Settlements returns money movements between accounts.
func Settlements() []model.Settlement {
	return []model.Settlement{
		{ID: "SET001", Date: day(2023, 10, 28), Amount: amt("1245.50"), Type: model.SettlementCardSettlement, FromAccount: "Stripe", ToAccount: "Main Bank Account"},
		{ID: "SET002", Date: day(2023, 10, 28), Amount: amt("850.00"), Type: model.SettlementCashDeposit, FromAccount: "Cash Register", ToAccount: "Main Bank Account"},
		{ID: "SET003", Date: day(2023, 10, 27), Amount: amt("5000.00"), Type: model.SettlementInternalTransfer, FromAccount: "Main Bank Account", ToAccount: "Savings Account"},
		{ID: "SET004", Date: day(2023, 10, 26), Amount: amt("2500.00"), Type: model.SettlementBankTransfer, FromAccount: "Main Bank Account", ToAccount: "City Properties (Rent)"},
	}
}

func flow(id string, d [3]int, desc string, cat model.CashFlowCategory, amount string, dir model.FlowDirection) model.CashFlowActivity {
	return model.CashFlowActivity{ID: id, Date: day(d[0], d[1], d[2]), Description: desc, Category: cat, Amount: amt(amount), Type: dir}
}

// CashFlow returns the cash movements of the period.
func CashFlow() []model.CashFlowActivity {
	const (
		op  = model.CashFlowOperating
		inv = model.CashFlowInvesting
		fin = model.CashFlowFinancing
	)
	return []model.CashFlowActivity{
		flow("CF001", [3]int{2023, 10, 28}, "Cash sales from customers", op, "1245.50", model.Inflow),
		flow("CF002", [3]int{2023, 10, 28}, "Payment for rent (EXP001)", op, "2500", model.Outflow),
		flow("CF003", [3]int{2023, 10, 27}, "Payment for utilities (EXP002)", op, "345.67", model.Outflow),
		flow("CF004", [3]int{2023, 10, 26}, "Payment to Apple Inc. (P001)", op, "9990", model.Outflow),
		flow("CF005", [3]int{2023, 10, 25}, "Collection from Peter Jones (S003)", op, "150.00", model.Inflow),
		flow("CF006", [3]int{2023, 10, 24}, "Payment for Marketing Tools (EXP007)", op, "200", model.Outflow),
		flow("CF007", [3]int{2023, 10, 22}, "Payment for employee salaries (EXP005)", op, "8500", model.Outflow),
		flow("CF008", [3]int{2023, 10, 20}, "Cash sales from customers", op, "3200.00", model.Inflow),

		flow("CF009", [3]int{2023, 10, 15}, "Purchase of new repair equipment", inv, "3500", model.Outflow),
		flow("CF010", [3]int{2023, 9, 5}, "Sale of old display shelf", inv, "300", model.Inflow),

		flow("CF011", [3]int{2023, 9, 1}, "Owner investment", fin, "20000", model.Inflow),
		flow("CF012", [3]int{2023, 10, 1}, "Short-term loan repayment", fin, "1000", model.Outflow),
	}
}

// TaxRates returns the configured sales tax rates.
func TaxRates() []model.TaxRate {
	return []model.TaxRate{
		{ID: "TAX001", Name: "Standard Sales Tax", Rate: amt("8.25"), IsDefault: true},
		{ID: "TAX002", Name: "Reduced Rate (Services)", Rate: amt("5.0"), IsDefault: false},
		{ID: "TAX003", Name: "Tax-Exempt", Rate: amt("0"), IsDefault: false},
	}
}
