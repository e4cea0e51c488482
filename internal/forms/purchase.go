package forms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// PurchaseInput is a new supplier invoice.
type PurchaseInput struct {
	Date         time.Time
	Supplier     model.Supplier // zero when none was chosen
	InvoiceID    string
	LineItems    []model.PurchaseLineItem
	ShippingCost decimal.Decimal
	OtherFees    decimal.Decimal
	Status       model.PurchaseStatus // Unpaid when empty
}

// GeneralSellerInvoice returns the generated invoice number for one-off
// purchases from the general seller.
func GeneralSellerInvoice(now time.Time) string {
	return "GS-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// AssignInvoice fills in a generated invoice number when the supplier is
// the general seller.
func (in *PurchaseInput) AssignInvoice(now time.Time) {
	if in.Supplier.ID == model.GeneralSellerID {
		in.InvoiceID = GeneralSellerInvoice(now)
	}
}

// Subtotal is the sum of quantity × price over the line items.
func (in PurchaseInput) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range in.LineItems {
		sum = sum.Add(li.Amount())
	}
	return sum
}

// GrandTotal is the subtotal plus shipping and other fees.
func (in PurchaseInput) GrandTotal() decimal.Decimal {
	return in.Subtotal().Add(in.ShippingCost).Add(in.OtherFees)
}

// Validate checks the purchase header and every line item. Line item errors
// are reported under "lineItems[i].field".
func (in PurchaseInput) Validate() Errors {
	var errs Errors
	if in.Date.IsZero() {
		errs.set("date", "Date is required.")
	}
	if in.Supplier.ID == "" {
		errs.set("supplier", "Supplier is required.")
	}
	if blank(in.InvoiceID) {
		errs.set("invoiceId", "Supplier Invoice # is required.")
	}
	if len(in.LineItems) == 0 {
		errs.set("lineItems", "At least one line item is required.")
	}
	for i, li := range in.LineItems {
		if li.ProductID == "" {
			errs.set(fmt.Sprintf("lineItems[%d].product", i), "Product is required.")
		}
		if li.Quantity <= 0 {
			errs.set(fmt.Sprintf("lineItems[%d].quantity", i), "Must be > 0.")
		}
		if li.Price.IsNegative() {
			errs.set(fmt.Sprintf("lineItems[%d].price", i), "Cannot be negative.")
		}
	}
	if in.ShippingCost.IsNegative() {
		errs.set("shippingCost", "Shipping cost cannot be negative.")
	}
	if in.OtherFees.IsNegative() {
		errs.set("otherFees", "Other fees cannot be negative.")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.set("status", "Status is invalid.")
	}
	return errs
}

// Build returns the purchase record with its grand total.
func (in PurchaseInput) Build(id string) model.Purchase {
	status := in.Status
	if status == "" {
		status = model.PurchaseUnpaid
	}
	lines := make([]model.PurchaseLineItem, len(in.LineItems))
	for i, li := range in.LineItems {
		if li.Unit == "" {
			li.Unit = "pcs"
		}
		lines[i] = li
	}
	return model.Purchase{
		ID:              id,
		Date:            day(in.Date),
		Supplier:        in.Supplier.Name,
		SupplierContact: in.Supplier.Phone,
		InvoiceID:       in.InvoiceID,
		LineItems:       lines,
		ShippingCost:    in.ShippingCost,
		OtherFees:       in.OtherFees,
		Total:           in.GrandTotal(),
		Status:          status,
	}
}

// PaymentInput records a payment against a supplier invoice.
type PaymentInput struct {
	Date      time.Time
	Amount    decimal.Decimal
	Method    string
	Reference string
}

// Validate checks the payment against the invoice it settles.
func (in PaymentInput) Validate(p model.Purchase) Errors {
	var errs Errors
	if in.Date.IsZero() {
		errs.set("date", "Payment date is required.")
	}
	if !p.Status.Outstanding() {
		errs.set("purchase", "Invoice is already paid.")
	}
	switch {
	case !in.Amount.IsPositive():
		errs.set("amount", "Amount must be greater than 0.")
	case in.Amount.GreaterThan(p.Total):
		errs.set("amount", "Amount cannot exceed the invoice total.")
	}
	if blank(in.Method) {
		errs.set("method", "Payment method is required.")
	}
	return errs
}

// Settles reports whether the payment covers the whole invoice.
func (in PaymentInput) Settles(p model.Purchase) bool {
	return in.Amount.Equal(p.Total)
}
