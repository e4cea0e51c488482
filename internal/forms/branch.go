package forms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// TransferInput moves stock between two branches.
type TransferInput struct {
	Date        time.Time
	FromBranch  string
	ToBranch    string
	ProductName string
	Quantity    int
}

// Validate checks the transfer.
func (in TransferInput) Validate() Errors {
	var errs Errors
	if in.Date.IsZero() {
		errs.set("date", "Date is required.")
	}
	if in.FromBranch == "" {
		errs.set("fromBranch", "Source location is required.")
	}
	if in.ToBranch == "" {
		errs.set("toBranch", "Destination location is required.")
	}
	if in.FromBranch != "" && in.FromBranch == in.ToBranch {
		errs.set("toBranch", "Destination cannot be the same as the source.")
	}
	if in.ProductName == "" {
		errs.set("productName", "A product must be selected.")
	}
	if in.Quantity <= 0 {
		errs.set("quantity", "Quantity must be positive.")
	}
	return errs
}

// Build returns the transfer record, in transit.
func (in TransferInput) Build(id string) model.StockTransfer {
	return model.StockTransfer{
		ID:          id,
		Date:        day(in.Date),
		FromBranch:  in.FromBranch,
		ToBranch:    in.ToBranch,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Status:      model.TransferInTransit,
	}
}

// SettlementInput moves money between two accounts.
type SettlementInput struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        model.SettlementType
	FromAccount string
	ToAccount   string
	Notes       string
}

// Validate checks the settlement.
func (in SettlementInput) Validate() Errors {
	var errs Errors
	if in.Date.IsZero() {
		errs.set("date", "Date is required.")
	}
	if !in.Amount.IsPositive() {
		errs.set("amount", "Amount must be greater than 0.")
	}
	if !in.Type.Valid() {
		errs.set("type", "Settlement type is invalid.")
	}
	if blank(in.FromAccount) {
		errs.set("fromAccount", "Source account is required.")
	}
	if blank(in.ToAccount) {
		errs.set("toAccount", "Destination account is required.")
	}
	return errs
}

// Build returns the settlement record.
func (in SettlementInput) Build(id string) model.Settlement {
	return model.Settlement{
		ID:          id,
		Date:        day(in.Date),
		Amount:      in.Amount,
		Type:        in.Type,
		FromAccount: in.FromAccount,
		ToAccount:   in.ToAccount,
	}
}

// BranchInput is a new shop location.
type BranchInput struct {
	Name    string
	Address string
	Phone   string
	Manager string
}

// Validate checks the branch.
func (in BranchInput) Validate() Errors {
	var errs Errors
	if blank(in.Name) {
		errs.set("name", "Branch name is required.")
	}
	if blank(in.Address) {
		errs.set("address", "Address is required.")
	}
	return errs
}

// Build returns the branch record.
func (in BranchInput) Build(id string) model.Branch {
	return model.Branch{ID: id, Name: in.Name, Address: in.Address, Phone: in.Phone, Manager: in.Manager}
}
