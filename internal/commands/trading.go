package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/ledger"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/render"
)

func balanceLine(m render.Money, b ledger.Balance, what string) string {
	return fmt.Sprintf("Outstanding: %s across %d %s  Overdue: %s across %d",
		m.Amount(b.Total), b.Count, what, m.Amount(b.Overdue), b.OverdueCount)
}

func newPayablesCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "payables",
		Short: "List unpaid and overdue supplier invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			p := ledger.NewPayables(b.Purchases, f.search)
			v := purchaseView("Accounts Payable", p.Purchases)
			m := a.money()
			if err := v.emit(cmd, m, f.export); err != nil {
				return err
			}
			if f.export == "" {
				fmt.Fprintln(cmd.OutOrStdout(), balanceLine(m, p.Balance, "invoices"))
			}
			return nil
		},
	}
	f.register(cmd, true, "", nil)
	return cmd
}

func newReceivablesCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "receivables",
		Short: "List pending and overdue customer orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			r := ledger.NewReceivables(b.Sales, f.search)
			v := saleView("Accounts Receivable", r.Sales)
			m := a.money()
			if err := v.emit(cmd, m, f.export); err != nil {
				return err
			}
			if f.export == "" {
				fmt.Fprintln(cmd.OutOrStdout(), balanceLine(m, r.Balance, "orders"))
			}
			return nil
		},
	}
	f.register(cmd, true, "", nil)
	return cmd
}

func saleView(title string, sales []model.Sale) view {
	v := view{
		title:   title,
		headers: []string{"Order ID", "Date", "Customer", "Items", "Total", "Status"},
		numeric: []int{3, 4},
	}
	for _, s := range sales {
		v.rows = append(v.rows, []any{s.ID, s.Date, s.Customer, s.Items, s.Total, string(s.PaymentStatus)})
	}
	return v
}

func purchaseView(title string, purchases []model.Purchase) view {
	v := view{
		title:   title,
		headers: []string{"ID", "Date", "Supplier", "Invoice #", "Items", "Total", "Status"},
		numeric: []int{4, 5},
	}
	for _, p := range purchases {
		v.rows = append(v.rows, []any{p.ID, p.Date, p.Supplier, p.InvoiceID, len(p.LineItems), p.Total, string(p.Status)})
	}
	return v
}

type salesOptions struct {
	listFlags
	orderID  string
	customer string
	min      string
	max      string
	status   string
	from     string
	to       string
	recent   int
}

func newSalesCommand(a *app) *cobra.Command {
	var opts salesOptions
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List the sales book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			return runSales(cmd, a.money(), b.Sales, opts)
		},
	}
	opts.register(cmd, false, ledger.DefaultSaleOrder.Key, ledger.SaleSortKeys.Names())
	cmd.Flags().StringVar(&opts.orderID, "order", "", "order ID contains")
	cmd.Flags().StringVar(&opts.customer, "customer", "", "customer name contains")
	cmd.Flags().StringVar(&opts.min, "min", "", "minimum order total")
	cmd.Flags().StringVar(&opts.max, "max", "", "maximum order total")
	cmd.Flags().StringVar(&opts.status, "status", "", "Paid, Pending or Overdue")
	cmd.Flags().StringVar(&opts.from, "from", "", "first day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "last day to include (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.recent, "recent", 0, "show only the first N orders")
	return cmd
}

func optionalAmount(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseAmount(name, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func runSales(cmd *cobra.Command, m render.Money, all []model.Sale, opts salesOptions) error {
	f := ledger.SaleFilter{OrderID: opts.orderID, Customer: opts.customer, Status: model.PaymentStatus(opts.status)}
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("invalid --status %q: use Paid, Pending or Overdue", opts.status)
	}
	var err error
	if f.MinTotal, err = optionalAmount("min", opts.min); err != nil {
		return err
	}
	if f.MaxTotal, err = optionalAmount("max", opts.max); err != nil {
		return err
	}
	if f.From, err = parseDate(opts.from); err != nil {
		return err
	}
	if f.To, err = parseDate(opts.to); err != nil {
		return err
	}

	sales, err := query.Apply(f.Apply(all), opts.order(cmd, ledger.DefaultSaleOrder), ledger.SaleSortKeys)
	if err != nil {
		return err
	}
	if opts.recent > 0 {
		sales = ledger.Recent(sales, opts.recent)
	}

	v := saleView("Sales", sales)
	v.footer = []any{"Total", "", "", "", ledger.SalesTotal(sales), ""}
	return v.emit(cmd, m, opts.export)
}

type purchasesOptions struct {
	listFlags
	status string
}

func newPurchasesCommand(a *app) *cobra.Command {
	var opts purchasesOptions
	cmd := &cobra.Command{
		Use:   "purchases [purchase-id|invoice]",
		Short: "List supplier invoices, or show one with its line items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			m := a.money()
			if len(args) == 1 {
				p, ok := ledger.FindPurchase(b.Purchases, args[0])
				if !ok {
					return fmt.Errorf("purchase %q not found", args[0])
				}
				return showPurchase(cmd, m, p, opts.export)
			}

			f := ledger.PurchaseFilter{Search: opts.search, Status: model.PurchaseStatus(opts.status)}
			if f.Status != "" && !f.Status.Valid() {
				return fmt.Errorf("invalid --status %q: use Paid, Unpaid or Overdue", opts.status)
			}
			list, err := query.Apply(f.Apply(b.Purchases), opts.order(cmd, query.Order{}), ledger.PurchaseSortKeys)
			if err != nil {
				return err
			}
			return purchaseView("Purchases", list).emit(cmd, m, opts.export)
		},
	}
	opts.register(cmd, true, "", ledger.PurchaseSortKeys.Names())
	cmd.Flags().StringVar(&opts.status, "status", "", "Paid, Unpaid or Overdue")
	return cmd
}

func showPurchase(cmd *cobra.Command, m render.Money, p model.Purchase, exportPath string) error {
	v := view{
		title:   fmt.Sprintf("Purchase %s  %s  invoice %s  %s", p.ID, p.Supplier, p.InvoiceID, p.Status),
		headers: []string{"Product ID", "Product", "Unit", "Qty", "Price", "Amount"},
		numeric: []int{3, 4, 5},
	}
	subtotal := decimal.Zero
	for _, li := range p.LineItems {
		v.rows = append(v.rows, []any{li.ProductID, li.ProductName, li.Unit, li.Quantity, li.Price, li.Amount()})
		subtotal = subtotal.Add(li.Amount())
	}
	v.rows = append(v.rows,
		[]any{"", "Subtotal", "", "", "", subtotal},
		[]any{"", "Shipping", "", "", "", p.ShippingCost},
		[]any{"", "Other fees", "", "", "", p.OtherFees},
	)
	v.footer = []any{"", "Grand total", "", "", "", p.Total}
	return v.emit(cmd, m, exportPath)
}
