package forms

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

var digits = regexp.MustCompile(`^\d+$`)

// AccountInput is a new chart of accounts entry.
type AccountInput struct {
	ID          string
	Name        string
	Type        model.AccountType
	SubType     string
	ParentID    string
	Balance     decimal.Decimal
	Description string
}

// Validate checks the account against the existing chart. A parent must be
// a top-level account of the same type.
func (in AccountInput) Validate(existing []model.Account) Errors {
	var errs Errors
	if blank(in.ID) || !digits.MatchString(in.ID) {
		errs.set("id", "Account ID must be a number.")
	}
	if len(in.ID) < 4 {
		errs.set("id", "Account ID must be at least 4 digits.")
	}
	if _, ok := findAccount(existing, in.ID); ok {
		errs.set("id", "Account ID already exists.")
	}
	if blank(in.Name) {
		errs.set("name", "Account name is required.")
	}
	if !in.Type.Valid() {
		errs.set("type", "Account type is invalid.")
	}
	if blank(in.SubType) {
		errs.set("subType", "Sub-type is required.")
	}
	if in.ParentID != "" {
		parent, ok := findAccount(existing, in.ParentID)
		switch {
		case !ok:
			errs.set("parentId", "Parent account does not exist.")
		case parent.Type != in.Type:
			errs.set("parentId", "Parent account must have the same type.")
		case parent.ParentID != "":
			errs.set("parentId", "Parent account cannot be a sub-account.")
		}
	}
	return errs
}

// Build returns the account record.
func (in AccountInput) Build() model.Account {
	return model.Account{
		ID:          in.ID,
		ParentID:    in.ParentID,
		Name:        in.Name,
		Type:        in.Type,
		SubType:     in.SubType,
		Balance:     in.Balance,
		Description: in.Description,
	}
}

func findAccount(accts []model.Account, id string) (model.Account, bool) {
	for _, a := range accts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}
