package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/export"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/render"
	"github.com/shopbook-dev/shopbook/internal/reports"
)

func newAccountsCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show the chart of accounts with sub-account rollups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			return runAccounts(cmd, a.money(), b.Accounts, f)
		},
	}
	f.register(cmd, true, "", nil)
	return cmd
}

func runAccounts(cmd *cobra.Command, m render.Money, svc *accounts.Service, f listFlags) error {
	groups := svc.Chart(f.search)

	if f.export != "" {
		s := export.Sheet{Name: "Chart of Accounts", Headers: []string{"ID", "Name", "Type", "Sub-type", "Parent ID", "Balance"}}
		for _, g := range groups {
			for _, r := range g.Rows {
				s.Rows = append(s.Rows, []any{r.Account.ID, r.Account.Name, string(r.Account.Type), r.Account.SubType, r.Account.ParentID, r.Balance})
				for _, c := range r.Children {
					s.Rows = append(s.Rows, []any{c.ID, c.Name, string(c.Type), c.SubType, c.ParentID, c.Balance})
				}
			}
		}
		return exportSheet(cmd, f.export, s)
	}

	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, render.Muted("No accounts found."))
		return nil
	}
	for _, g := range groups {
		nodes := make([]render.Node, 0, len(g.Rows))
		for _, r := range g.Rows {
			n := render.Node{Label: accountLabel(m, r.Account, r.Balance)}
			for _, c := range r.Children {
				n.Children = append(n.Children, render.Node{Label: accountLabel(m, c, c.Balance)})
			}
			nodes = append(nodes, n)
		}
		fmt.Fprintln(out, render.Tree(fmt.Sprintf("%s  %s", g.Type, m.Amount(g.Total)), nodes))
	}
	return nil
}

func accountLabel(m render.Money, acct model.Account, balance decimal.Decimal) string {
	return fmt.Sprintf("%s  %s  (%s)  %s", acct.ID, acct.Name, acct.SubType, m.Amount(balance))
}

func sectionLines(s reports.Section) []render.StatementLine {
	var lines []render.StatementLine
	for _, l := range s.Lines {
		lines = append(lines, render.StatementLine{Label: l.Account.Name, Amount: l.Amount, Depth: 1})
		for _, c := range l.Children {
			lines = append(lines, render.StatementLine{Label: c.Name, Amount: c.Balance, Depth: 2})
		}
	}
	return lines
}

func statementSheet(name string, lines []render.StatementLine) export.Sheet {
	s := export.Sheet{Name: name, Headers: []string{"Line", "Amount"}}
	for _, l := range lines {
		amount := any(l.Amount)
		if l.Blank {
			amount = nil
		}
		s.Rows = append(s.Rows, []any{strings.Repeat("  ", l.Depth) + l.Label, amount})
	}
	return s
}

func emitStatement(cmd *cobra.Command, m render.Money, title, path string, lines []render.StatementLine) error {
	if path != "" {
		return exportSheet(cmd, path, statementSheet(title, lines))
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Statement(title, m, lines))
	return nil
}

func newBalanceSheetCommand(a *app) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Show assets against liabilities and equity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			bs := reports.NewBalanceSheet(b.Accounts.All())
			m := a.money()
			if err := emitStatement(cmd, m, "Balance Sheet", exportPath, balanceSheetLines(bs)); err != nil {
				return err
			}
			if exportPath == "" && !bs.Balanced() {
				fmt.Fprintf(cmd.OutOrStdout(), "Out of balance by %s\n", m.Statement(bs.Difference()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the statement to a .csv or .xlsx file")
	return cmd
}

func balanceSheetLines(bs *reports.BalanceSheet) []render.StatementLine {
	lines := []render.StatementLine{{Label: "Assets", Blank: true}}
	for _, s := range bs.Assets {
		lines = append(lines, render.StatementLine{Label: s.Title, Blank: true, Depth: 1})
		for _, l := range sectionLines(s) {
			l.Depth++
			lines = append(lines, l)
		}
		lines = append(lines, render.StatementLine{Label: "Total " + s.Title, Amount: s.Total, Depth: 1, Total: true})
	}
	lines = append(lines, render.StatementLine{Label: "Total Assets", Amount: bs.TotalAssets, Total: true})

	lines = append(lines, render.StatementLine{Label: "Liabilities", Blank: true})
	lines = append(lines, sectionLines(bs.Liabilities)...)
	lines = append(lines, render.StatementLine{Label: "Total Liabilities", Amount: bs.Liabilities.Total, Total: true})

	lines = append(lines, render.StatementLine{Label: "Equity", Blank: true})
	lines = append(lines, sectionLines(bs.Equity)...)
	lines = append(lines, render.StatementLine{Label: "Total Equity", Amount: bs.Equity.Total, Total: true})

	lines = append(lines, render.StatementLine{Label: "Total Liabilities & Equity", Amount: bs.TotalLiabilitiesAndEquity, Total: true})
	return lines
}

func newIncomeStatementCommand(a *app) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Show revenue, cost of goods sold and operating expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			is := reports.NewIncomeStatement(b.Accounts.All())
			return emitStatement(cmd, a.money(), "Income Statement", exportPath, incomeLines(is))
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the statement to a .csv or .xlsx file")
	return cmd
}

func incomeLines(is *reports.IncomeStatement) []render.StatementLine {
	lines := []render.StatementLine{{Label: "Revenue", Blank: true}}
	lines = append(lines, sectionLines(is.Revenue)...)
	lines = append(lines,
		render.StatementLine{Label: "Total Revenue", Amount: is.Revenue.Total, Total: true},
		render.StatementLine{Label: is.COGS.Account.Name, Amount: is.COGS.Amount.Neg(), Depth: 1},
	)
	for _, c := range is.COGS.Children {
		lines = append(lines, render.StatementLine{Label: c.Name, Amount: c.Balance.Neg(), Depth: 2})
	}
	lines = append(lines,
		render.StatementLine{Label: "Gross Profit", Amount: is.GrossProfit, Total: true},
		render.StatementLine{Label: "Operating Expenses", Blank: true},
	)
	lines = append(lines, sectionLines(is.OperatingExpenses)...)
	lines = append(lines,
		render.StatementLine{Label: "Total Operating Expenses", Amount: is.OperatingExpenses.Total, Total: true},
		render.StatementLine{Label: "Net Income", Amount: is.NetIncome, Total: true},
	)
	return lines
}

func newProfitLossCommand(a *app) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "profit-loss",
		Short: "Show the profit and loss waterfall with margins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			pl := reports.NewProfitLoss(b.Accounts.All())
			v := view{
				title:   "Profit & Loss",
				headers: []string{"Step", "Amount"},
				numeric: []int{1},
				rows: [][]any{
					{"Revenue", pl.Revenue},
					{"Cost of Goods Sold", pl.COGSDelta().Neg()},
					{"Gross Profit", pl.GrossProfit},
					{"Operating Expenses", pl.OperatingDelta().Neg()},
					{"Net Income", pl.NetIncome},
					{"Gross Margin", percentCell(pl.GrossMargin)},
					{"Net Margin", percentCell(pl.NetMargin)},
				},
			}
			return v.emit(cmd, a.money(), exportPath)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the figures to a .csv or .xlsx file")
	return cmd
}

func newCashFlowCommand(a *app) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Show cash movements by operating, investing and financing activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			cf := reports.NewCashFlowStatement(b.CashFlow)
			var lines []render.StatementLine
			for _, s := range cf.Sections {
				lines = append(lines, render.StatementLine{Label: string(s.Category) + " Activities", Blank: true})
				for _, act := range s.Activities {
					label := fmt.Sprintf("%s  %s", act.Date.Format(model.DateFormat), act.Description)
					lines = append(lines, render.StatementLine{Label: label, Amount: act.Signed(), Depth: 1})
				}
				lines = append(lines, render.StatementLine{Label: "Net " + string(s.Category), Amount: s.Net, Total: true})
			}
			lines = append(lines,
				render.StatementLine{Label: "Total Inflows", Amount: cf.Inflows},
				render.StatementLine{Label: "Total Outflows", Amount: cf.Outflows.Neg()},
				render.StatementLine{Label: "Net Cash Flow", Amount: cf.Net(), Total: true},
			)
			return emitStatement(cmd, a.money(), "Cash Flow Statement", exportPath, lines)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the statement to a .csv or .xlsx file")
	return cmd
}

func newSummaryCommand(a *app) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the key figures and the expense breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			s := reports.NewSummary(b.Accounts.All())
			v := view{
				title:   "Summary",
				headers: []string{"Figure", "Value"},
				numeric: []int{1},
				rows: [][]any{
					{"Net Income", s.NetIncome},
					{"Gross Margin", percentCell(s.GrossMargin)},
					{"Current Ratio", render.Ratio(s.CurrentRatio)},
					{"Net Worth", s.NetWorth},
					{"Total Revenue", s.TotalRevenue},
					{"Gross Profit", s.GrossProfit},
					{"Total Assets", s.TotalAssets},
					{"Total Liabilities", s.TotalLiabilities},
				},
			}
			for _, sl := range s.ExpenseBreakdown {
				v.rows = append(v.rows, []any{"Expense: " + sl.Name, sl.Value})
			}
			return v.emit(cmd, a.money(), exportPath)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the figures to a .csv or .xlsx file")
	return cmd
}

func newSettlementsCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "List money movements between accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			v := view{
				title:   "Settlements",
				headers: []string{"ID", "Date", "Type", "From", "To", "Amount"},
				numeric: []int{5},
			}
			for _, s := range b.Settlements {
				v.rows = append(v.rows, []any{s.ID, s.Date, string(s.Type), s.FromAccount, s.ToAccount, s.Amount})
			}
			return v.emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, false, "", nil)
	return cmd
}

func newTaxRatesCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "tax-rates",
		Short: "List the configured tax rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			v := view{
				title:   "Tax Rates",
				headers: []string{"ID", "Name", "Rate", "Default"},
				numeric: []int{2},
			}
			for _, r := range b.TaxRates {
				def := ""
				if r.IsDefault {
					def = "yes"
				}
				v.rows = append(v.rows, []any{r.ID, r.Name, percentCell(r.Rate), def})
			}
			return v.emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, false, "", nil)
	return cmd
}
