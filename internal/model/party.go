package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierCategory classifies suppliers.
type SupplierCategory string

const (
	SupplierElectronics SupplierCategory = "Electronics"
	SupplierAccessories SupplierCategory = "Accessories"
	SupplierParts       SupplierCategory = "Parts Distributor"
	SupplierOthers      SupplierCategory = "Others"
)

// Valid reports whether c is a known supplier category.
func (c SupplierCategory) Valid() bool {
	switch c {
	case SupplierElectronics, SupplierAccessories, SupplierParts, SupplierOthers:
		return true
	}
	return false
}

// GeneralSellerID identifies the catch-all supplier for one-off sellers.
const GeneralSellerID = "SUP-GEN"

// Supplier is a vendor.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Category      SupplierCategory
	TotalSpent    decimal.Decimal
}

// ContactType separates customers from prospects.
type ContactType string

const (
	ContactCustomer ContactType = "Customer"
	ContactLead     ContactType = "Lead"
)

// Contact is a customer or lead.
type Contact struct {
	ID              string
	Name            string
	Type            ContactType
	Email           string
	Phone           string
	Company         string
	LastContactDate time.Time
}

// Role is a staff role.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleSalesStaff Role = "Sales Staff"
	RoleTechnician Role = "Technician"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesStaff, RoleTechnician:
		return true
	}
	return false
}

// UserStatus is whether a staff account is enabled.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// User is a staff member.
type User struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Status   UserStatus
	BranchID string
}

// TaxRate is a configured sales tax rate in percent.
type TaxRate struct {
	ID        string
	Name      string
	Rate      decimal.Decimal
	IsDefault bool
}
