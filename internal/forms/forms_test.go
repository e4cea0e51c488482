package forms

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestErrorsSetReplacesInPlace(t *testing.T) {
	var errs Errors
	errs.set("id", "first")
	errs.set("name", "second")
	errs.set("id", "third")

	require.Len(t, errs, 2)
	assert.Equal(t, "id", errs[0].Field)
	assert.Equal(t, "third", errs.Get("id"))
	assert.Equal(t, "id: third; name: second", errs.Error())
	assert.Equal(t, "", errs.Get("missing"))
}

func TestErrorsErr(t *testing.T) {
	var none Errors
	assert.NoError(t, none.Err())

	some := Errors{{Field: "name", Message: "Account name is required."}}
	err := some.Err()
	require.Error(t, err)
	var fe Errors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Account name is required.", fe.Get("name"))
}

func TestSaleValidate(t *testing.T) {
	today := time.Date(2024, 7, 20, 15, 30, 0, 0, time.UTC)
	valid := SaleInput{Date: model.Day(2024, 7, 20), Customer: "Ann", Items: 1, Total: dec("10")}

	tests := []struct {
		name  string
		edit  func(*SaleInput)
		field string
		msg   string
	}{
		{"missing date", func(in *SaleInput) { in.Date = time.Time{} }, "date", "Date is required."},
		{"past date", func(in *SaleInput) { in.Date = model.Day(2024, 7, 19) }, "date", "Date cannot be in the past."},
		{"blank customer", func(in *SaleInput) { in.Customer = "  " }, "customer", "Customer name is required."},
		{"no items", func(in *SaleInput) { in.Items = 0 }, "items", "Items must be greater than 0."},
		{"negative total", func(in *SaleInput) { in.Total = dec("-1") }, "total", "Total cannot be negative."},
	}
	assert.Empty(t, valid.Validate(today))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)
			errs := in.Validate(today)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs.Get(tt.field))
		})
	}
}

func TestSaleBuildDefaultsPending(t *testing.T) {
	s := SaleInput{Date: model.Day(2024, 7, 20), Customer: "Ann", Items: 2, Total: dec("99.50")}.Build("ORD008")
	assert.Equal(t, model.PaymentPending, s.PaymentStatus)
	assert.Equal(t, "ORD008", s.ID)
	assert.Equal(t, 2, s.Items)
}

func TestPurchaseTotals(t *testing.T) {
	in := PurchaseInput{
		LineItems: []model.PurchaseLineItem{
			{ProductID: "IP15-PRO-256-BLU", Quantity: 2, Price: dec("999.00")},
			{ProductID: "ACC-CASE-01", Quantity: 10, Price: dec("5.50")},
		},
		ShippingCost: dec("25"),
		OtherFees:    dec("4.50"),
	}
	assert.Equal(t, "2053", in.Subtotal().String())
	assert.Equal(t, "2082.5", in.GrandTotal().String())

	p := in.Build("P008")
	assert.True(t, p.Total.Equal(dec("2082.50")))
	assert.Equal(t, model.PurchaseUnpaid, p.Status)
	assert.Equal(t, "pcs", p.LineItems[0].Unit)
}

func TestPurchaseValidate(t *testing.T) {
	in := PurchaseInput{
		LineItems: []model.PurchaseLineItem{
			{ProductID: "", Quantity: 0, Price: dec("-1")},
		},
	}
	errs := in.Validate()
	assert.Equal(t, "Date is required.", errs.Get("date"))
	assert.Equal(t, "Supplier is required.", errs.Get("supplier"))
	assert.Equal(t, "Supplier Invoice # is required.", errs.Get("invoiceId"))
	assert.Equal(t, "Product is required.", errs.Get("lineItems[0].product"))
	assert.Equal(t, "Must be > 0.", errs.Get("lineItems[0].quantity"))
	assert.Equal(t, "Cannot be negative.", errs.Get("lineItems[0].price"))

	empty := PurchaseInput{Date: model.Day(2024, 7, 1), Supplier: model.Supplier{ID: "SUP001"}, InvoiceID: "INV-1"}
	assert.Equal(t, "At least one line item is required.", empty.Validate().Get("lineItems"))
}

func TestPurchaseAssignInvoice(t *testing.T) {
	now := time.UnixMilli(1721450000123)

	gen := PurchaseInput{Supplier: model.Supplier{ID: model.GeneralSellerID}}
	gen.AssignInvoice(now)
	assert.Equal(t, "GS-1721450000123", gen.InvoiceID)

	other := PurchaseInput{Supplier: model.Supplier{ID: "SUP001"}, InvoiceID: "INV-9"}
	other.AssignInvoice(now)
	assert.Equal(t, "INV-9", other.InvoiceID)
}

func TestPaymentValidate(t *testing.T) {
	p := model.Purchase{ID: "P002", Total: dec("1500"), Status: model.PurchaseUnpaid}
	ok := PaymentInput{Date: model.Day(2024, 7, 1), Amount: dec("1500"), Method: "Bank Transfer"}
	assert.Empty(t, ok.Validate(p))
	assert.True(t, ok.Settles(p))

	over := ok
	over.Amount = dec("1500.01")
	assert.Equal(t, "Amount cannot exceed the invoice total.", over.Validate(p).Get("amount"))

	zero := ok
	zero.Amount = decimal.Zero
	assert.Equal(t, "Amount must be greater than 0.", zero.Validate(p).Get("amount"))

	p.Status = model.PurchasePaid
	assert.Equal(t, "Invoice is already paid.", ok.Validate(p).Get("purchase"))

	partial := PaymentInput{Amount: dec("500")}
	assert.False(t, partial.Settles(p))
}

func TestExpenseValidate(t *testing.T) {
	existing := seed.Expenses()

	top := ExpenseInput{Date: model.Day(2024, 7, 1), Category: "Rent", Payee: "Landlord", Amount: dec("1000")}
	assert.Empty(t, top.Validate(existing))

	errs := ExpenseInput{}.Validate(existing)
	assert.Equal(t, "Date is required.", errs.Get("date"))
	assert.Equal(t, "Category name is required.", errs.Get("category"))
	assert.Equal(t, "Payee is required for top-level expenses.", errs.Get("payee"))
	assert.Equal(t, "Amount must be greater than 0.", errs.Get("amount"))

	neg := top
	neg.Amount = dec("-5")
	assert.Equal(t, "Amount cannot be negative.", neg.Validate(existing).Get("amount"))

	sub := ExpenseInput{ParentID: "EXP004", Date: model.Day(2024, 7, 1), Category: "Snacks", Amount: decimal.Zero}
	assert.Empty(t, sub.Validate(existing), "sub-expenses need no payee and may be zero")

	missing := sub
	missing.ParentID = "EXP999"
	assert.Equal(t, "Parent expense does not exist.", missing.Validate(existing).Get("parentId"))
}

func TestExpenseBuild(t *testing.T) {
	e := ExpenseInput{Date: model.Day(2024, 7, 1), Category: "Rent", Payee: "Landlord", Amount: dec("1000")}.Build("EXP011")
	assert.Equal(t, model.ExpenseUnpaid, e.Status)
	assert.Equal(t, "EXP011", e.ID)
}

func TestAccountValidateID(t *testing.T) {
	chart := seed.Accounts()
	base := AccountInput{Name: "Petty Cash", Type: model.AccountTypeAsset, SubType: model.SubTypeCurrentAsset}

	tests := []struct {
		id   string
		want string
	}{
		{"abcd", "Account ID must be a number."},
		{"abc", "Account ID must be at least 4 digits."},
		{"12", "Account ID must be at least 4 digits."},
		{"", "Account ID must be at least 4 digits."},
		{"1010", "Account ID already exists."},
		{"1099", ""},
	}
	for _, tt := range tests {
		in := base
		in.ID = tt.id
		assert.Equal(t, tt.want, in.Validate(chart).Get("id"), "id %q", tt.id)
	}
}

func TestAccountValidateParent(t *testing.T) {
	chart := seed.Accounts()
	in := AccountInput{ID: "1099", Name: "Petty Cash", Type: model.AccountTypeAsset, SubType: model.SubTypeCurrentAsset}

	in.ParentID = "1020"
	assert.Empty(t, in.Validate(chart))

	in.ParentID = "1021"
	assert.Equal(t, "Parent account cannot be a sub-account.", in.Validate(chart).Get("parentId"))

	in.ParentID = "2000"
	assert.Equal(t, "Parent account must have the same type.", in.Validate(chart).Get("parentId"))

	in.ParentID = "9999"
	assert.Equal(t, "Parent account does not exist.", in.Validate(chart).Get("parentId"))
}

func TestAccountValidateRequired(t *testing.T) {
	errs := AccountInput{ID: "1099", Type: "Bogus"}.Validate(nil)
	assert.Equal(t, "Account name is required.", errs.Get("name"))
	assert.Equal(t, "Sub-type is required.", errs.Get("subType"))
	assert.Equal(t, "Account type is invalid.", errs.Get("type"))
}

func TestEmailChecks(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "Email is required."},
		{"nobody", "Email address is invalid."},
		{"a@b", "Email address is invalid."},
		{"a@b.co", ""},
	}
	for _, tt := range tests {
		s := SupplierInput{Name: "X", ContactPerson: "Y", Email: tt.email}
		assert.Equal(t, tt.want, s.Validate().Get("email"), "supplier %q", tt.email)
		c := ContactInput{Name: "X", Phone: "1", Email: tt.email}
		assert.Equal(t, tt.want, c.Validate().Get("email"), "contact %q", tt.email)
	}
}

func TestSupplierAndContact(t *testing.T) {
	errs := SupplierInput{Email: "x@y.z"}.Validate()
	assert.Equal(t, "Supplier name is required.", errs.Get("name"))
	assert.Equal(t, "Contact person is required.", errs.Get("contactPerson"))
	assert.Equal(t, model.SupplierOthers, SupplierInput{Name: "X"}.Build("SUP009").Category)

	errs = ContactInput{Email: "x@y.z"}.Validate()
	assert.Equal(t, "Contact name is required.", errs.Get("name"))
	assert.Equal(t, "Phone number is required.", errs.Get("phone"))

	c := ContactInput{Name: "Ann"}.Build("C006", time.Date(2024, 7, 20, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, model.ContactCustomer, c.Type)
	assert.Equal(t, model.Day(2024, 7, 20), c.LastContactDate)
}

func TestUserValidate(t *testing.T) {
	valid := UserInput{Name: "Sam", Email: "sam@shop.io", BranchID: "B01", Password: "secret12", ConfirmPassword: "secret12"}
	assert.Empty(t, valid.Validate())

	short := valid
	short.Password, short.ConfirmPassword = "short", "short"
	assert.Equal(t, "Password must be at least 8 characters long.", short.Validate().Get("password"))

	mismatch := valid
	mismatch.ConfirmPassword = "secret13"
	assert.Equal(t, "Passwords do not match.", mismatch.Validate().Get("confirmPassword"))

	errs := UserInput{}.Validate()
	assert.Equal(t, "Full name is required.", errs.Get("name"))
	assert.Equal(t, "Password is required.", errs.Get("password"))
	assert.Equal(t, "A branch must be assigned.", errs.Get("branchId"))
	assert.Equal(t, "", errs.Get("confirmPassword"), "two empty passwords match")

	u := valid.Build("U006")
	assert.Equal(t, model.RoleSalesStaff, u.Role)
	assert.Equal(t, model.UserActive, u.Status)
}

func TestTaxRateValidate(t *testing.T) {
	assert.Empty(t, TaxRateInput{Name: "VAT", Rate: dec("12")}.Validate())
	errs := TaxRateInput{Rate: dec("-0.5")}.Validate()
	assert.Equal(t, "Tax rate name is required.", errs.Get("name"))
	assert.Equal(t, "Rate cannot be negative.", errs.Get("rate"))
}

func TestTransferValidate(t *testing.T) {
	valid := TransferInput{Date: model.Day(2024, 7, 1), FromBranch: "Main", ToBranch: "Mall", ProductName: "iPhone 15", Quantity: 2}
	assert.Empty(t, valid.Validate())
	assert.Equal(t, model.TransferInTransit, valid.Build("ST004").Status)

	same := valid
	same.ToBranch = "Main"
	assert.Equal(t, "Destination cannot be the same as the source.", same.Validate().Get("toBranch"))

	errs := TransferInput{}.Validate()
	assert.Equal(t, "Source location is required.", errs.Get("fromBranch"))
	assert.Equal(t, "Destination location is required.", errs.Get("toBranch"))
	assert.Equal(t, "A product must be selected.", errs.Get("productName"))
	assert.Equal(t, "Quantity must be positive.", errs.Get("quantity"))
}

func TestSettlementValidate(t *testing.T) {
	valid := SettlementInput{
		Date: model.Day(2024, 7, 1), Amount: dec("250"), Type: model.SettlementCashDeposit,
		FromAccount: "Cash Drawer", ToAccount: "Checking",
	}
	assert.Empty(t, valid.Validate())

	errs := SettlementInput{}.Validate()
	assert.Len(t, errs, 5)
	assert.Equal(t, "Settlement type is invalid.", errs.Get("type"))
}

func TestBranchValidate(t *testing.T) {
	assert.Empty(t, BranchInput{Name: "Uptown", Address: "1 Main St"}.Validate())
	errs := BranchInput{}.Validate()
	assert.Equal(t, "Branch name is required.", errs.Get("name"))
	assert.Equal(t, "Address is required.", errs.Get("address"))
}
