package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:     "shopbook",
		Short:   "Back office for a phone and accessories shop",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dir, "dir", ".", "workspace directory")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "finance", Title: "Finance:"},
		&cobra.Group{ID: "trading", Title: "Sales and purchasing:"},
		&cobra.Group{ID: "stock", Title: "Inventory:"},
		&cobra.Group{ID: "people", Title: "Directory:"},
	)

	rootCmd.AddCommand(
		newInitCommand(a),
		newDashboardCommand(a),
		newAddCommand(a),
	)
	rootCmd.AddCommand(grouped("finance",
		newAccountsCommand(a),
		newBalanceSheetCommand(a),
		newIncomeStatementCommand(a),
		newProfitLossCommand(a),
		newCashFlowCommand(a),
		newSummaryCommand(a),
		newExpensesCommand(a),
		newExpenseCategoriesCommand(a),
		newSettlementsCommand(a),
		newTaxRatesCommand(a),
	)...)
	rootCmd.AddCommand(grouped("trading",
		newPayablesCommand(a),
		newReceivablesCommand(a),
		newSalesCommand(a),
		newPurchasesCommand(a),
	)...)
	rootCmd.AddCommand(grouped("stock",
		newInventoryCommand(a),
		newLowStockCommand(a),
		newProductsCommand(a),
		newVariationsCommand(a),
		newTransfersCommand(a),
	)...)
	rootCmd.AddCommand(grouped("people",
		newSuppliersCommand(a),
		newContactsCommand(a),
		newStaffCommand(a),
		newBranchesCommand(a),
	)...)

	return rootCmd
}

func grouped(id string, cmds ...*cobra.Command) []*cobra.Command {
	for _, c := range cmds {
		c.GroupID = id
	}
	return cmds
}
