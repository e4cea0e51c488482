package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch is a shop location.
type Branch struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Manager string
}

// TransferStatus is the state of a stock transfer.
type TransferStatus string

const (
	TransferInTransit TransferStatus = "In Transit"
	TransferCompleted TransferStatus = "Completed"
	TransferCancelled TransferStatus = "Cancelled"
)

// StockTransfer moves stock between branches.
type StockTransfer struct {
	ID          string
	Date        time.Time
	FromBranch  string
	ToBranch    string
	ProductName string
	Quantity    int
	Status      TransferStatus
}

// SettlementType is the kind of money movement.
type SettlementType string

const (
	SettlementBankTransfer     SettlementType = "Bank Transfer"
	SettlementCashDeposit      SettlementType = "Cash Deposit"
	SettlementCardSettlement   SettlementType = "Card Settlement"
	SettlementInternalTransfer SettlementType = "Internal Transfer"
)

// Valid reports whether t is a known settlement type.
func (t SettlementType) Valid() bool {
	switch t {
	case SettlementBankTransfer, SettlementCashDeposit, SettlementCardSettlement, SettlementInternalTransfer:
		return true
	}
	return false
}

// Settlement moves money between accounts.
type Settlement struct {
	ID          string
	Date        time.Time
	Amount      decimal.Decimal
	Type        SettlementType
	FromAccount string
	ToAccount   string
}
