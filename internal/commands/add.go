package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/forms"
	"github.com/shopbook-dev/shopbook/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new account, expense, sale, purchase or other entry",
	}
	cmd.AddCommand(
		newAddAccountCommand(a),
		newAddExpenseCommand(a),
		newAddSaleCommand(a),
		newAddPurchaseCommand(a),
		newAddPaymentCommand(a),
		newAddSupplierCommand(a),
		newAddContactCommand(a),
		newAddUserCommand(a),
		newAddTaxRateCommand(a),
		newAddTransferCommand(a),
		newAddSettlementCommand(a),
		newAddBranchCommand(a),
	)
	return cmd
}

// submitted reports the outcome of a form submission. Validation errors are
// listed one field per line on stderr.
func submitted(cmd *cobra.Command, form, recordID string, err error) error {
	var fe forms.Errors
	if errors.As(err, &fe) {
		w := cmd.ErrOrStderr()
		for _, e := range fe {
			fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
		}
		return fmt.Errorf("%s not saved: %d invalid field(s)", form, len(fe))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", form, recordID)
	return nil
}

// today returns the current calendar day.
func (a *app) today() time.Time {
	y, m, d := a.now().Date()
	return model.Day(y, int(m), d)
}

// date parses a date flag, defaulting to today.
func (a *app) date(s string) (time.Time, error) {
	if s == "" {
		return a.today(), nil
	}
	return model.ParseDay(s)
}

func newAddAccountCommand(a *app) *cobra.Command {
	var (
		in      forms.AccountInput
		acctTyp string
		balance string
	)
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Add an account to the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Balance, err = parseAmount("balance", balance); err != nil {
				return err
			}
			in.Type = model.AccountType(acctTyp)
			b, err := a.book()
			if err != nil {
				return err
			}
			acct, err := b.AddAccount(in)
			return submitted(cmd, "account", acct.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ID, "id", "", "numeric account ID of at least 4 digits")
	f.StringVar(&in.Name, "name", "", "account name")
	f.StringVar(&acctTyp, "type", "", "Asset, Liability, Equity, Revenue or Expense")
	f.StringVar(&in.SubType, "sub-type", "", "sub-type, e.g. Current Asset")
	f.StringVar(&in.ParentID, "parent", "", "parent account ID")
	f.StringVar(&balance, "balance", "", "opening balance")
	f.StringVar(&in.Description, "description", "", "description")
	return cmd
}

func newAddExpenseCommand(a *app) *cobra.Command {
	var (
		in     forms.ExpenseInput
		date   string
		amount string
		status string
	)
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Add an expense or sub-expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			if in.Amount, err = parseAmount("amount", amount); err != nil {
				return err
			}
			in.Status = model.ExpenseStatus(status)
			b, err := a.book()
			if err != nil {
				return err
			}
			e, err := b.AddExpense(in)
			return submitted(cmd, "expense", e.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "expense date (YYYY-MM-DD, default today)")
	f.StringVar(&in.Category, "category", "", "expense category")
	f.StringVar(&in.Payee, "payee", "", "who was paid")
	f.StringVar(&amount, "amount", "", "amount")
	f.StringVar(&status, "status", "", "Paid or Unpaid (default Unpaid)")
	f.StringVar(&in.ParentID, "parent", "", "parent expense ID for a sub-expense")
	return cmd
}

func newAddSaleCommand(a *app) *cobra.Command {
	var (
		in     forms.SaleInput
		date   string
		total  string
		status string
	)
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record a customer order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			if in.Total, err = parseAmount("total", total); err != nil {
				return err
			}
			in.Status = model.PaymentStatus(status)
			b, err := a.book()
			if err != nil {
				return err
			}
			s, err := b.AddSale(in)
			return submitted(cmd, "sale", s.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "order date (YYYY-MM-DD, default today)")
	f.StringVar(&in.Customer, "customer", "", "customer name")
	f.IntVar(&in.Items, "items", 0, "number of items")
	f.StringVar(&total, "total", "", "order total")
	f.StringVar(&status, "status", "", "Paid, Pending or Overdue (default Pending)")
	return cmd
}

// parseLineItem parses "product:quantity:price". The product may itself
// contain colons.
func parseLineItem(s string) (model.PurchaseLineItem, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return model.PurchaseLineItem{}, fmt.Errorf("invalid --item %q: want product:quantity:price", s)
	}
	n := len(parts)
	qty, err := strconv.Atoi(parts[n-2])
	if err != nil {
		return model.PurchaseLineItem{}, fmt.Errorf("invalid --item %q quantity: %w", s, err)
	}
	price, err := parseAmount("item", parts[n-1])
	if err != nil {
		return model.PurchaseLineItem{}, err
	}
	return model.PurchaseLineItem{
		ProductID: strings.Join(parts[:n-2], ":"),
		Quantity:  qty,
		Price:     price,
	}, nil
}

func newAddPurchaseCommand(a *app) *cobra.Command {
	var (
		in       forms.PurchaseInput
		date     string
		items    []string
		shipping string
		fees     string
		status   string
	)
	cmd := &cobra.Command{
		Use:   "purchase <supplier>",
		Short: "Record a supplier invoice",
		Long: "Record a supplier invoice. The supplier is an ID or exact name; " +
			model.GeneralSellerID + " generates the invoice number.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			for _, s := range items {
				li, err := parseLineItem(s)
				if err != nil {
					return err
				}
				in.LineItems = append(in.LineItems, li)
			}
			if in.ShippingCost, err = parseAmount("shipping", shipping); err != nil {
				return err
			}
			if in.OtherFees, err = parseAmount("fees", fees); err != nil {
				return err
			}
			in.Status = model.PurchaseStatus(status)
			b, err := a.book()
			if err != nil {
				return err
			}
			p, err := b.AddPurchase(args[0], in)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s, grand total %s\n", p.InvoiceID, a.money().Amount(p.Total))
			}
			return submitted(cmd, "purchase", p.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "invoice date (YYYY-MM-DD, default today)")
	f.StringVar(&in.InvoiceID, "invoice", "", "supplier invoice number")
	f.StringArrayVar(&items, "item", nil, "line item as product:quantity:price (repeatable)")
	f.StringVar(&shipping, "shipping", "", "shipping cost")
	f.StringVar(&fees, "fees", "", "other fees")
	f.StringVar(&status, "status", "", "Paid, Unpaid or Overdue (default Unpaid)")
	return cmd
}

func newAddPaymentCommand(a *app) *cobra.Command {
	var (
		in     forms.PaymentInput
		date   string
		amount string
	)
	cmd := &cobra.Command{
		Use:   "payment <purchase-id|invoice>",
		Short: "Pay a supplier invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			if in.Amount, err = parseAmount("amount", amount); err != nil {
				return err
			}
			b, err := a.book()
			if err != nil {
				return err
			}
			p, err := b.RecordPayment(args[0], in)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s has been marked as paid.\n", p.InvoiceID)
			}
			return submitted(cmd, "payment for", p.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "payment date (YYYY-MM-DD, default today)")
	f.StringVar(&amount, "amount", "", "amount paid")
	f.StringVar(&in.Method, "method", "", "payment method, e.g. Bank Transfer")
	f.StringVar(&in.Reference, "reference", "", "payment reference")
	return cmd
}

func newAddSupplierCommand(a *app) *cobra.Command {
	var (
		in       forms.SupplierInput
		category string
	)
	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Add a supplier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Category = model.SupplierCategory(category)
			b, err := a.book()
			if err != nil {
				return err
			}
			s, err := b.AddSupplier(in)
			return submitted(cmd, "supplier", s.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "supplier name")
	f.StringVar(&in.ContactPerson, "contact", "", "contact person")
	f.StringVar(&in.Email, "email", "", "e-mail address")
	f.StringVar(&in.Phone, "phone", "", "phone number")
	f.StringVar(&category, "category", "", "Electronics, Accessories, Parts Distributor or Others")
	return cmd
}

func newAddContactCommand(a *app) *cobra.Command {
	var (
		in      forms.ContactInput
		contact string
	)
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Add a customer or lead",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Type = model.ContactType(contact)
			b, err := a.book()
			if err != nil {
				return err
			}
			c, err := b.AddContact(in)
			return submitted(cmd, "contact", c.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "contact name")
	f.StringVar(&contact, "type", "", "Customer or Lead (default Customer)")
	f.StringVar(&in.Email, "email", "", "e-mail address")
	f.StringVar(&in.Phone, "phone", "", "phone number")
	f.StringVar(&in.Company, "company", "", "company")
	return cmd
}

func newAddUserCommand(a *app) *cobra.Command {
	var (
		in     forms.UserInput
		role   string
		status string
	)
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Add a staff account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Role = model.Role(role)
			in.Status = model.UserStatus(status)
			b, err := a.book()
			if err != nil {
				return err
			}
			u, err := b.AddUser(in)
			return submitted(cmd, "user", u.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Email, "email", "", "e-mail address")
	f.StringVar(&role, "role", "", "Admin, Manager, Sales Staff or Technician (default Sales Staff)")
	f.StringVar(&status, "status", "", "Active or Inactive (default Active)")
	f.StringVar(&in.BranchID, "branch", "", "branch ID or name")
	f.StringVar(&in.Password, "password", "", "password")
	f.StringVar(&in.ConfirmPassword, "confirm-password", "", "password again")
	return cmd
}

func newAddTaxRateCommand(a *app) *cobra.Command {
	var (
		in   forms.TaxRateInput
		rate string
	)
	cmd := &cobra.Command{
		Use:   "tax-rate",
		Short: "Add a tax rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Rate, err = parseAmount("rate", rate); err != nil {
				return err
			}
			b, err := a.book()
			if err != nil {
				return err
			}
			r, err := b.AddTaxRate(in)
			return submitted(cmd, "tax rate", r.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "tax name")
	f.StringVar(&rate, "rate", "", "rate in percent")
	f.BoolVar(&in.IsDefault, "default", false, "make this the default rate")
	return cmd
}

func newAddTransferCommand(a *app) *cobra.Command {
	var (
		in   forms.TransferInput
		date string
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send stock from one branch to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			b, err := a.book()
			if err != nil {
				return err
			}
			t, err := b.AddTransfer(in)
			return submitted(cmd, "transfer", t.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "transfer date (YYYY-MM-DD, default today)")
	f.StringVar(&in.FromBranch, "from", "", "source branch")
	f.StringVar(&in.ToBranch, "to", "", "destination branch")
	f.StringVar(&in.ProductName, "product", "", "product name")
	f.IntVar(&in.Quantity, "quantity", 0, "units to send")
	return cmd
}

func newAddSettlementCommand(a *app) *cobra.Command {
	var (
		in     forms.SettlementInput
		date   string
		amount string
		typ    string
	)
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Record money moved between accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Date, err = a.date(date); err != nil {
				return err
			}
			if in.Amount, err = parseAmount("amount", amount); err != nil {
				return err
			}
			in.Type = model.SettlementType(typ)
			b, err := a.book()
			if err != nil {
				return err
			}
			s, err := b.AddSettlement(in)
			return submitted(cmd, "settlement", s.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "settlement date (YYYY-MM-DD, default today)")
	f.StringVar(&amount, "amount", "", "amount")
	f.StringVar(&typ, "type", "", "Bank Transfer, Cash Deposit, Card Settlement or Internal Transfer")
	f.StringVar(&in.FromAccount, "from", "", "source account")
	f.StringVar(&in.ToAccount, "to", "", "destination account")
	f.StringVar(&in.Notes, "notes", "", "notes")
	return cmd
}

func newAddBranchCommand(a *app) *cobra.Command {
	var in forms.BranchInput
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Add a shop location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			br, err := b.AddBranch(in)
			return submitted(cmd, "branch", br.ID, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "branch name")
	f.StringVar(&in.Address, "address", "", "street address")
	f.StringVar(&in.Phone, "phone", "", "phone number")
	f.StringVar(&in.Manager, "manager", "", "branch manager")
	return cmd
}
