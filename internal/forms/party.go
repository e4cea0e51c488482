package forms

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// SupplierInput is a new supplier.
type SupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Category      model.SupplierCategory // Others when empty
}

// Validate checks the supplier.
func (in SupplierInput) Validate() Errors {
	var errs Errors
	if blank(in.Name) {
		errs.set("name", "Supplier name is required.")
	}
	if blank(in.ContactPerson) {
		errs.set("contactPerson", "Contact person is required.")
	}
	checkEmail(&errs, in.Email)
	if in.Category != "" && !in.Category.Valid() {
		errs.set("category", "Category is invalid.")
	}
	return errs
}

// Build returns the supplier record with no spending yet.
func (in SupplierInput) Build(id string) model.Supplier {
	cat := in.Category
	if cat == "" {
		cat = model.SupplierOthers
	}
	return model.Supplier{
		ID:            id,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Category:      cat,
		TotalSpent:    decimal.Zero,
	}
}

// ContactInput is a new customer or lead.
type ContactInput struct {
	Name    string
	Type    model.ContactType // Customer when empty
	Email   string
	Phone   string
	Company string
}

// Validate checks the contact.
func (in ContactInput) Validate() Errors {
	var errs Errors
	if blank(in.Name) {
		errs.set("name", "Contact name is required.")
	}
	checkEmail(&errs, in.Email)
	if blank(in.Phone) {
		errs.set("phone", "Phone number is required.")
	}
	if in.Type != "" && in.Type != model.ContactCustomer && in.Type != model.ContactLead {
		errs.set("type", "Contact type is invalid.")
	}
	return errs
}

// Build returns the contact record, last contacted today.
func (in ContactInput) Build(id string, today time.Time) model.Contact {
	typ := in.Type
	if typ == "" {
		typ = model.ContactCustomer
	}
	return model.Contact{
		ID:              id,
		Name:            in.Name,
		Type:            typ,
		Email:           in.Email,
		Phone:           in.Phone,
		Company:         in.Company,
		LastContactDate: day(today),
	}
}

// MinPasswordLength is the shortest accepted staff password.
const MinPasswordLength = 8

// UserInput is a new staff account.
type UserInput struct {
	Name            string
	Email           string
	Role            model.Role // Sales Staff when empty
	Status          model.UserStatus
	BranchID        string
	Password        string
	ConfirmPassword string
}

// Validate checks the user. The password is only checked, never stored.
func (in UserInput) Validate() Errors {
	var errs Errors
	if blank(in.Name) {
		errs.set("name", "Full name is required.")
	}
	checkEmail(&errs, in.Email)
	switch {
	case in.Password == "":
		errs.set("password", "Password is required.")
	case utf8.RuneCountInString(in.Password) < MinPasswordLength:
		errs.set("password", "Password must be at least 8 characters long.")
	}
	if in.Password != in.ConfirmPassword {
		errs.set("confirmPassword", "Passwords do not match.")
	}
	if in.BranchID == "" {
		errs.set("branchId", "A branch must be assigned.")
	}
	if in.Role != "" && !in.Role.Valid() {
		errs.set("role", "Role is invalid.")
	}
	return errs
}

// Build returns the user record.
func (in UserInput) Build(id string) model.User {
	role := in.Role
	if role == "" {
		role = model.RoleSalesStaff
	}
	status := in.Status
	if status == "" {
		status = model.UserActive
	}
	return model.User{ID: id, Name: in.Name, Email: in.Email, Role: role, Status: status, BranchID: in.BranchID}
}

// TaxRateInput is a new tax rate in percent.
type TaxRateInput struct {
	Name      string
	Rate      decimal.Decimal
	IsDefault bool
}

// Validate checks the tax rate.
func (in TaxRateInput) Validate() Errors {
	var errs Errors
	if blank(in.Name) {
		errs.set("name", "Tax rate name is required.")
	}
	if in.Rate.IsNegative() {
		errs.set("rate", "Rate cannot be negative.")
	}
	return errs
}

// Build returns the tax rate record.
func (in TaxRateInput) Build(id string) model.TaxRate {
	return model.TaxRate{ID: id, Name: in.Name, Rate: in.Rate, IsDefault: in.IsDefault}
}
