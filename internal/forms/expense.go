package forms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// ExpenseInput is a new expense or sub-expense.
type ExpenseInput struct {
	ParentID string
	Date     time.Time
	Category string
	Payee    string
	Amount   decimal.Decimal
	Status   model.ExpenseStatus // Unpaid when empty
}

// Validate checks the expense. Payee and a positive amount are only required
// for top-level expenses; a sub-expense must reference an existing
// top-level expense.
func (in ExpenseInput) Validate(existing []model.Expense) Errors {
	var errs Errors
	if in.Date.IsZero() {
		errs.set("date", "Date is required.")
	}
	if blank(in.Category) {
		errs.set("category", "Category name is required.")
	}
	if blank(in.Payee) && in.ParentID == "" {
		errs.set("payee", "Payee is required for top-level expenses.")
	}
	if !in.Amount.IsPositive() && in.ParentID == "" {
		errs.set("amount", "Amount must be greater than 0.")
	}
	if in.Amount.IsNegative() {
		errs.set("amount", "Amount cannot be negative.")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.set("status", "Status is invalid.")
	}
	if in.ParentID != "" {
		parent, ok := findExpense(existing, in.ParentID)
		switch {
		case !ok:
			errs.set("parentId", "Parent expense does not exist.")
		case parent.ParentID != "":
			errs.set("parentId", "Parent expense cannot be a sub-expense.")
		}
	}
	return errs
}

// Build returns the expense record.
func (in ExpenseInput) Build(id string) model.Expense {
	status := in.Status
	if status == "" {
		status = model.ExpenseUnpaid
	}
	return model.Expense{
		ID:       id,
		ParentID: in.ParentID,
		Date:     day(in.Date),
		Category: in.Category,
		Payee:    in.Payee,
		Amount:   in.Amount,
		Status:   status,
	}
}

func findExpense(expenses []model.Expense, id string) (model.Expense, bool) {
	for _, e := range expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}
