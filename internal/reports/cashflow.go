package reports

import (
	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// CashFlowSection is one activity category with its net movement.
type CashFlowSection struct {
	Category   model.CashFlowCategory
	Activities []model.CashFlowActivity
	Net        decimal.Decimal
}

// CashFlowStatement groups cash movements into operating, investing and
// financing sections.
type CashFlowStatement struct {
	Sections []CashFlowSection
	Inflows  decimal.Decimal
	Outflows decimal.Decimal
}

// Net is inflows minus outflows.
func (c *CashFlowStatement) Net() decimal.Decimal {
	return c.Inflows.Sub(c.Outflows)
}

// Section returns the section for a category.
func (c *CashFlowStatement) Section(cat model.CashFlowCategory) CashFlowSection {
	for _, s := range c.Sections {
		if s.Category == cat {
			return s
		}
	}
	return CashFlowSection{Category: cat, Net: decimal.Zero}
}

// NewCashFlowStatement builds the statement. Every category gets a section,
// even when it has no activity. Activities of unknown categories count
// toward the totals only.
func NewCashFlowStatement(activities []model.CashFlowActivity) *CashFlowStatement {
	cf := &CashFlowStatement{Inflows: decimal.Zero, Outflows: decimal.Zero}
	index := make(map[model.CashFlowCategory]int, len(model.CashFlowCategories))
	for i, cat := range model.CashFlowCategories {
		cf.Sections = append(cf.Sections, CashFlowSection{Category: cat, Net: decimal.Zero})
		index[cat] = i
	}

	for _, a := range activities {
		if a.Type == model.Inflow {
			cf.Inflows = cf.Inflows.Add(a.Amount)
		} else {
			cf.Outflows = cf.Outflows.Add(a.Amount)
		}
		i, ok := index[a.Category]
		if !ok {
			continue
		}
		cf.Sections[i].Activities = append(cf.Sections[i].Activities, a)
		cf.Sections[i].Net = cf.Sections[i].Net.Add(a.Signed())
	}
	return cf
}
