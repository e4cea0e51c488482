package store

import (
	"fmt"
	"slices"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/activity"
	"github.com/shopbook-dev/shopbook/internal/directory"
	"github.com/shopbook-dev/shopbook/internal/forms"
	"github.com/shopbook-dev/shopbook/internal/id"
	"github.com/shopbook-dev/shopbook/internal/inventory"
	"github.com/shopbook-dev/shopbook/internal/ledger"
	"github.com/shopbook-dev/shopbook/internal/log"
	"github.com/shopbook-dev/shopbook/internal/model"
)

// Form names recorded in the activity log.
const (
	FormAccount    = "account"
	FormExpense    = "expense"
	FormSale       = "sale"
	FormPurchase   = "purchase"
	FormPayment    = "payment"
	FormSupplier   = "supplier"
	FormContact    = "contact"
	FormUser       = "user"
	FormTaxRate    = "tax-rate"
	FormTransfer   = "transfer"
	FormSettlement = "settlement"
	FormBranch     = "branch"
	FormVariation  = "variation"
)

func ids[T any](items []T, key func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = key(it)
	}
	return out
}

// record logs an accepted submission to the activity log and commits the
// workspace when auto-commit is on.
func (b *Book) record(form, recordID, summary string) error {
	b.log.Info("submission accepted", log.FieldForm, form, log.FieldRecordID, recordID)
	if b.Root == "" {
		return nil
	}

	entry := activity.NewEntry(b.Now(), form, recordID, summary)
	if err := activity.Append(b.Root, entry); err != nil {
		return fmt.Errorf("recording %s %s: %w", form, recordID, err)
	}

	hash, err := b.Committer().Commit(fmt.Sprintf("add: %s %s", form, recordID))
	if err != nil {
		return fmt.Errorf("committing %s %s: %w", form, recordID, err)
	}
	if hash != "" {
		b.log.Debug("committed submission", log.FieldOperation, log.OpCommit, log.FieldSubmission, entry.SubmissionID.String(), "commit", hash)
	}
	return nil
}

// AddAccount validates and appends an account to the chart, saving the
// workspace file. The chart is left unchanged when the save fails.
func (b *Book) AddAccount(in forms.AccountInput) (model.Account, error) {
	if err := in.Validate(b.Accounts.All()).Err(); err != nil {
		return model.Account{}, err
	}
	acct := in.Build()
	chart := accounts.NewService(append(slices.Clone(b.Accounts.All()), acct))
	if b.Root != "" {
		if err := chart.Save(b.Root); err != nil {
			return model.Account{}, err
		}
	}
	b.Accounts = chart
	return acct, b.record(FormAccount, acct.ID, fmt.Sprintf("%s (%s)", acct.Name, acct.Type))
}

// AddExpense validates and appends an expense, saving the workspace file.
func (b *Book) AddExpense(in forms.ExpenseInput) (model.Expense, error) {
	if err := in.Validate(b.Expenses).Err(); err != nil {
		return model.Expense{}, err
	}
	next := id.Next("EXP", 3, ids(b.Expenses, func(e model.Expense) string { return e.ID }))
	e := in.Build(next)
	list := append(slices.Clone(b.Expenses), e)
	if b.Root != "" {
		if err := saveExpenses(b.Root, list); err != nil {
			return model.Expense{}, err
		}
	}
	b.Expenses = list
	return e, b.record(FormExpense, e.ID, fmt.Sprintf("%s %s to %s", e.Category, e.Amount.StringFixed(2), e.Payee))
}

// AddSale validates and prepends a sale to the sales book.
func (b *Book) AddSale(in forms.SaleInput) (model.Sale, error) {
	if err := in.Validate(b.Now()).Err(); err != nil {
		return model.Sale{}, err
	}
	s := in.Build(id.Next("S", 3, ids(b.Sales, func(s model.Sale) string { return s.ID })))
	b.Sales = append([]model.Sale{s}, b.Sales...)
	return s, b.record(FormSale, s.ID, fmt.Sprintf("%s, %d items, %s", s.Customer, s.Items, s.Total.StringFixed(2)))
}

// AddPurchase resolves the supplier, validates the invoice and prepends it.
// The supplier's total spend grows by the grand total.
func (b *Book) AddPurchase(supplierRef string, in forms.PurchaseInput) (model.Purchase, error) {
	if supplierRef != "" {
		sup, ok := directory.FindSupplier(b.Suppliers, supplierRef)
		if !ok {
			return model.Purchase{}, fmt.Errorf("supplier %q: %w", supplierRef, ErrNotFound)
		}
		in.Supplier = sup
	}
	in.AssignInvoice(b.Now())
	for i, li := range in.LineItems {
		if li.ProductID == "" {
			continue
		}
		if p, ok := inventory.FindProduct(b.Products, li.ProductID); ok {
			in.LineItems[i].ProductID = p.ID
			if li.ProductName == "" {
				in.LineItems[i].ProductName = p.Name
			}
		}
	}
	if err := in.Validate().Err(); err != nil {
		return model.Purchase{}, err
	}

	p := in.Build(id.Next("P", 3, ids(b.Purchases, func(p model.Purchase) string { return p.ID })))
	b.Purchases = append([]model.Purchase{p}, b.Purchases...)
	for i := range b.Suppliers {
		if b.Suppliers[i].ID == in.Supplier.ID {
			b.Suppliers[i].TotalSpent = b.Suppliers[i].TotalSpent.Add(p.Total)
		}
	}
	return p, b.record(FormPurchase, p.ID, fmt.Sprintf("%s invoice %s, %s", p.Supplier, p.InvoiceID, p.Total.StringFixed(2)))
}

// RecordPayment marks a supplier invoice as paid. ref is the purchase ID or
// the supplier invoice number.
func (b *Book) RecordPayment(ref string, in forms.PaymentInput) (model.Purchase, error) {
	p, ok := ledger.FindPurchase(b.Purchases, ref)
	if !ok {
		return model.Purchase{}, fmt.Errorf("purchase %q: %w", ref, ErrNotFound)
	}
	if err := in.Validate(p).Err(); err != nil {
		return model.Purchase{}, err
	}

	summary := fmt.Sprintf("paid %s of %s by %s", in.Amount.StringFixed(2), p.Total.StringFixed(2), in.Method)
	if in.Settles(p) {
		summary = fmt.Sprintf("paid in full by %s", in.Method)
	}
	if in.Reference != "" {
		summary += ", ref " + in.Reference
	}

	p.Status = model.PurchasePaid
	for i := range b.Purchases {
		if b.Purchases[i].ID == p.ID {
			b.Purchases[i] = p
		}
	}
	return p, b.record(FormPayment, p.ID, summary)
}

// AddSupplier validates and appends a supplier.
func (b *Book) AddSupplier(in forms.SupplierInput) (model.Supplier, error) {
	if err := in.Validate().Err(); err != nil {
		return model.Supplier{}, err
	}
	s := in.Build(id.Next("SUP", 3, ids(b.Suppliers, func(s model.Supplier) string { return s.ID })))
	b.Suppliers = append(b.Suppliers, s)
	return s, b.record(FormSupplier, s.ID, s.Name)
}

// AddContact validates and prepends a contact.
func (b *Book) AddContact(in forms.ContactInput) (model.Contact, error) {
	if err := in.Validate().Err(); err != nil {
		return model.Contact{}, err
	}
	c := in.Build(id.Next("C", 3, ids(b.Contacts, func(c model.Contact) string { return c.ID })), b.Now())
	b.Contacts = append([]model.Contact{c}, b.Contacts...)
	return c, b.record(FormContact, c.ID, fmt.Sprintf("%s (%s)", c.Name, c.Type))
}

// AddUser validates and appends a staff account. The branch may be given by
// ID or name.
func (b *Book) AddUser(in forms.UserInput) (model.User, error) {
	if in.BranchID != "" {
		br, ok := findBranch(b.Branches.All(), in.BranchID)
		if !ok {
			return model.User{}, fmt.Errorf("branch %q: %w", in.BranchID, ErrNotFound)
		}
		in.BranchID = br.ID
	}
	if err := in.Validate().Err(); err != nil {
		return model.User{}, err
	}
	u := in.Build(id.Next("USR", 3, ids(b.Staff, func(u model.User) string { return u.ID })))
	b.Staff = append(b.Staff, u)
	return u, b.record(FormUser, u.ID, fmt.Sprintf("%s, %s at %s", u.Name, u.Role, b.Branches.Name(u.BranchID)))
}

// AddTaxRate validates and appends a tax rate. A default rate clears the
// flag on every other rate.
func (b *Book) AddTaxRate(in forms.TaxRateInput) (model.TaxRate, error) {
	if err := in.Validate().Err(); err != nil {
		return model.TaxRate{}, err
	}
	r := in.Build(id.Next("TAX", 3, ids(b.TaxRates, func(r model.TaxRate) string { return r.ID })))
	b.TaxRates = append(b.TaxRates, r)
	if r.IsDefault {
		directory.SetDefault(b.TaxRates, r.ID)
	}
	return r, b.record(FormTaxRate, r.ID, fmt.Sprintf("%s %s%%", r.Name, r.Rate.String()))
}

// AddTransfer validates and initiates a stock transfer between branches.
func (b *Book) AddTransfer(in forms.TransferInput) (model.StockTransfer, error) {
	if err := in.Validate().Err(); err != nil {
		return model.StockTransfer{}, err
	}
	for _, ref := range []string{in.FromBranch, in.ToBranch} {
		if !b.Branches.Exists(ref) {
			return model.StockTransfer{}, fmt.Errorf("branch %q: %w", ref, ErrNotFound)
		}
	}
	next := id.Next("ST", 3, ids(b.Transfers.All(), func(t model.StockTransfer) string { return t.ID }))
	t := b.Transfers.Initiate(in.Build(next))
	return t, b.record(FormTransfer, t.ID, fmt.Sprintf("%d × %s from %s to %s", t.Quantity, t.ProductName, t.FromBranch, t.ToBranch))
}

// AddSettlement validates and prepends a settlement.
func (b *Book) AddSettlement(in forms.SettlementInput) (model.Settlement, error) {
	if err := in.Validate().Err(); err != nil {
		return model.Settlement{}, err
	}
	s := in.Build(id.Next("SET", 3, ids(b.Settlements, func(s model.Settlement) string { return s.ID })))
	b.Settlements = append([]model.Settlement{s}, b.Settlements...)
	return s, b.record(FormSettlement, s.ID, fmt.Sprintf("%s %s from %s to %s", s.Type, s.Amount.StringFixed(2), s.FromAccount, s.ToAccount))
}

// AddBranch validates and appends a branch.
func (b *Book) AddBranch(in forms.BranchInput) (model.Branch, error) {
	if err := in.Validate().Err(); err != nil {
		return model.Branch{}, err
	}
	br := in.Build(id.Next("B", 3, ids(b.Branches.All(), func(br model.Branch) string { return br.ID })))
	b.Branches.Add(br)
	return br, b.record(FormBranch, br.ID, br.Name)
}

// AddVariationValue adds a value to a variation attribute. It reports false
// when the value was blank or already present.
func (b *Book) AddVariationValue(attrID, value string) (bool, error) {
	added, err := b.Variations.AddValue(attrID, value)
	if err != nil || !added {
		return added, err
	}
	return true, b.record(FormVariation, attrID, value)
}

func findBranch(branches []model.Branch, ref string) (model.Branch, bool) {
	for _, br := range branches {
		if br.ID == ref || br.Name == ref {
			return br, true
		}
	}
	return model.Branch{}, false
}
