package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/export"
	"github.com/shopbook-dev/shopbook/internal/expenses"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/render"
)

type expensesOptions struct {
	listFlags
	from     string
	to       string
	status   string
	category string
}

func newExpensesCommand(a *app) *cobra.Command {
	var opts expensesOptions
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List the expense book with sub-expense rollups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			return runExpenses(cmd, a.money(), b.Expenses, opts)
		},
	}
	opts.register(cmd, false, expenses.DefaultOrder.Key, expenses.SortKeys.Names())
	cmd.Flags().StringVar(&opts.from, "from", "", "first day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.status, "status", "", "Paid or Unpaid")
	cmd.Flags().StringVar(&opts.category, "category", expenses.AllCategories, "category, or All")
	return cmd
}

func runExpenses(cmd *cobra.Command, m render.Money, all []model.Expense, opts expensesOptions) error {
	from, err := parseDate(opts.from)
	if err != nil {
		return err
	}
	to, err := parseDate(opts.to)
	if err != nil {
		return err
	}
	status := model.ExpenseStatus(opts.status)
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid --status %q: use Paid or Unpaid", opts.status)
	}

	filter := expenses.Filter{From: from, To: to, Status: status, Category: opts.category}
	v, err := expenses.NewView(all, filter, opts.order(cmd, expenses.DefaultOrder))
	if err != nil {
		return err
	}

	if opts.export != "" {
		return exportExpenses(cmd, opts.export, v.Sorted)
	}

	t := render.Table{
		Title:   "Expenses",
		Headers: []string{"ID", "Date", "Category", "Payee", "Amount", "Status"},
		Numeric: []int{4},
	}
	for _, r := range v.Rows {
		t.Rows = append(t.Rows, []string{
			r.Expense.ID, r.Expense.Date.Format(model.DateFormat), r.Expense.Category,
			r.Expense.Payee, m.Amount(r.Amount), string(r.Expense.Status),
		})
		for _, c := range r.Children {
			t.Rows = append(t.Rows, []string{
				"  " + c.ID, c.Date.Format(model.DateFormat), "  " + c.Category,
				c.Payee, m.Amount(c.Amount), string(c.Status),
			})
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "Total: %s  Top category: %s  Categories: %s\n",
		m.Amount(v.Total), v.TopCategory, strings.Join(expenses.Categories(all), ", "))
	return nil
}

// exportExpenses writes the expense export format for .csv files and a
// workbook with the same columns for .xlsx files.
func exportExpenses(cmd *cobra.Command, path string, list []model.Expense) error {
	format, err := export.FormatOf(path)
	if err != nil {
		return err
	}
	if format == export.XLSX {
		s := export.Sheet{Name: "Expenses", Headers: strings.Split(expenses.ExportHeader, ",")}
		for _, e := range list {
			s.Rows = append(s.Rows, []any{e.ID, e.Date, e.Category, e.Payee, e.Amount, string(e.Status), e.ParentID})
		}
		return exportSheet(cmd, path, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	if err := expenses.Export(f, list); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(list), path)
	return f.Close()
}

func newExpenseCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense-categories [group-id]",
		Short: "Show the expense category catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			groups := b.ExpenseCategories
			if len(args) == 1 {
				g, ok := expenses.FindGroup(groups, args[0])
				if !ok {
					return fmt.Errorf("expense category group %q not found", args[0])
				}
				groups = []model.ExpenseCategoryGroup{g}
			}
			nodes := make([]render.Node, 0, len(groups))
			for _, g := range groups {
				n := render.Node{Label: fmt.Sprintf("%s (%s)", g.Name, g.ID)}
				for _, sub := range g.Subcategories {
					n.Children = append(n.Children, render.Node{Label: sub})
				}
				nodes = append(nodes, n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Tree("Expense Categories", nodes))
			return nil
		},
	}
	return cmd
}
