package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/inventory"
	"github.com/shopbook-dev/shopbook/internal/ledger"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/render"
	"github.com/shopbook-dev/shopbook/internal/reports"
	"github.com/shopbook-dev/shopbook/internal/store"
)

// dashboardRecentSales is how many sales the dashboard lists.
const dashboardRecentSales = 5

var oneRatio = decimal.NewFromInt(1)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show key figures, recent sales and low-stock alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			return runDashboard(cmd, a.money(), b)
		},
	}
}

func runDashboard(cmd *cobra.Command, m render.Money, b *store.Book) error {
	out := cmd.OutOrStdout()
	s := reports.NewSummary(b.Accounts.All())
	pay := ledger.NewPayables(b.Purchases, "")
	rec := ledger.NewReceivables(b.Sales, "")
	threshold := b.Config.Inventory.LowStockThreshold
	low := inventory.LowStock(b.Inventory, threshold)

	fmt.Fprintln(out, render.Heading(b.Config.Business.Name))
	fmt.Fprintln(out, render.Cards(
		render.Card{Label: "Net Income", Value: m.Amount(s.NetIncome), Bad: s.NetIncome.IsNegative()},
		render.Card{Label: "Gross Margin", Value: render.Percent(s.GrossMargin)},
		render.Card{Label: "Current Ratio", Value: render.Ratio(s.CurrentRatio), Bad: s.CurrentRatio.LessThan(oneRatio)},
		render.Card{Label: "Net Worth", Value: m.Amount(s.NetWorth)},
	))
	fmt.Fprintln(out, render.Cards(
		render.Card{
			Label: "Payables",
			Value: m.Amount(pay.Total),
			Note:  fmt.Sprintf("%d open, %d overdue", pay.Count, pay.OverdueCount),
			Bad:   pay.OverdueCount > 0,
		},
		render.Card{
			Label: "Receivables",
			Value: m.Amount(rec.Total),
			Note:  fmt.Sprintf("%d open, %d overdue", rec.Count, rec.OverdueCount),
			Bad:   rec.OverdueCount > 0,
		},
		render.Card{
			Label: "Low Stock",
			Value: fmt.Sprint(len(low)),
			Note:  fmt.Sprintf("below %d units", threshold),
			Bad:   len(low) > 0,
		},
	))

	sales, err := query.Apply(b.Sales, ledger.DefaultSaleOrder, ledger.SaleSortKeys)
	if err != nil {
		return err
	}
	if err := saleView("Recent Sales", ledger.Recent(sales, dashboardRecentSales)).emit(cmd, m, ""); err != nil {
		return err
	}
	return inventoryView("Low Stock Alerts", low, threshold).emit(cmd, m, "")
}
