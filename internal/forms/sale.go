package forms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// SaleInput is a new order in the sales book.
type SaleInput struct {
	Date     time.Time
	Customer string
	Items    int
	Total    decimal.Decimal
	Status   model.PaymentStatus // Pending when empty
}

// Validate checks the sale against today's date.
func (in SaleInput) Validate(today time.Time) Errors {
	var errs Errors
	switch {
	case in.Date.IsZero():
		errs.set("date", "Date is required.")
	case day(in.Date).Before(day(today)):
		errs.set("date", "Date cannot be in the past.")
	}
	if blank(in.Customer) {
		errs.set("customer", "Customer name is required.")
	}
	if in.Items <= 0 {
		errs.set("items", "Items must be greater than 0.")
	}
	if in.Total.IsNegative() {
		errs.set("total", "Total cannot be negative.")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.set("status", "Payment status is invalid.")
	}
	return errs
}

// Build returns the sale record.
func (in SaleInput) Build(id string) model.Sale {
	status := in.Status
	if status == "" {
		status = model.PaymentPending
	}
	return model.Sale{
		ID:            id,
		Date:          day(in.Date),
		Customer:      in.Customer,
		Total:         in.Total,
		PaymentStatus: status,
		Items:         in.Items,
	}
}
