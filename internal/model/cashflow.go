package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowCategory is the statement section of a cash movement.
type CashFlowCategory string

const (
	CashFlowOperating CashFlowCategory = "Operating"
	CashFlowInvesting CashFlowCategory = "Investing"
	CashFlowFinancing CashFlowCategory = "Financing"
)

// CashFlowCategories lists sections in statement order.
var CashFlowCategories = []CashFlowCategory{CashFlowOperating, CashFlowInvesting, CashFlowFinancing}

// FlowDirection is inflow or outflow.
type FlowDirection string

const (
	Inflow  FlowDirection = "inflow"
	Outflow FlowDirection = "outflow"
)

// CashFlowActivity is one cash movement. Amount is always positive.
type CashFlowActivity struct {
	ID          string
	Date        time.Time
	Description string
	Category    CashFlowCategory
	Amount      decimal.Decimal
	Type        FlowDirection
}

// Signed returns the amount with outflows negated.
func (a CashFlowActivity) Signed() decimal.Decimal {
	if a.Type == Outflow {
		return a.Amount.Neg()
	}
	return a.Amount
}
