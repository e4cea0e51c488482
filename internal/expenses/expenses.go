// Package expenses implements the expense book view: filtering, sorting,
// sub-expense rollup and export.
package expenses

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/rollup"
)

// RelPath is the expense book location inside a workspace.
const RelPath = "expenses/expenses.csv"

// AllCategories selects every category in a Filter.
const AllCategories = "All"

// Rollup reads expenses for sub-expense totals.
var Rollup = rollup.Accessors[model.Expense]{
	ID:     func(e model.Expense) string { return e.ID },
	Parent: func(e model.Expense) string { return e.ParentID },
	Value:  func(e model.Expense) decimal.Decimal { return e.Amount },
}

// SortKeys are the sortable expense columns.
var SortKeys = query.Keys[model.Expense]{
	"id":       func(e model.Expense) any { return e.ID },
	"date":     func(e model.Expense) any { return e.Date },
	"category": func(e model.Expense) any { return e.Category },
	"payee":    func(e model.Expense) any { return e.Payee },
	"amount":   func(e model.Expense) any { return e.Amount },
	"status":   func(e model.Expense) any { return e.Status },
	"parent":   func(e model.Expense) any { return e.ParentID },
}

// DefaultOrder shows the newest expenses first.
var DefaultOrder = query.Order{Key: "date", Direction: query.Desc}

// Filter narrows the expense book. Zero fields do not filter.
type Filter struct {
	From     time.Time // inclusive
	To       time.Time // inclusive
	Status   model.ExpenseStatus
	Category string // a parent category also selects its sub-expenses
}

// Apply returns the expenses of all that pass the filter, in input order.
func (f Filter) Apply(all []model.Expense) []model.Expense {
	byID := make(map[string]model.Expense, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}

	return query.Filter(all, func(e model.Expense) bool {
		if !f.From.IsZero() && e.Date.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && e.Date.After(f.To) {
			return false
		}
		if f.Status != "" && e.Status != f.Status {
			return false
		}
		if f.Category == "" || f.Category == AllCategories {
			return true
		}
		if e.Category == f.Category {
			return true
		}
		parent, ok := byID[e.ParentID]
		return ok && e.ParentID != "" && parent.Category == f.Category
	})
}

// Row is a top-level expense with its displayed amount.
type Row struct {
	Expense  model.Expense
	Amount   decimal.Decimal
	Children []model.Expense
}

// View is the filtered, sorted expense book.
type View struct {
	Sorted      []model.Expense // flat, in display order
	Rows        []Row
	Total       decimal.Decimal
	TopCategory string
}

// NewView filters and sorts the expense book and rolls up sub-expenses.
func NewView(all []model.Expense, f Filter, o query.Order) (*View, error) {
	filtered := f.Apply(all)
	sorted, err := query.Apply(filtered, o, SortKeys)
	if err != nil {
		return nil, err
	}

	tree := rollup.New(sorted, Rollup)
	v := &View{
		Sorted:      sorted,
		Total:       Total(filtered),
		TopCategory: TopCategory(filtered, all),
	}
	for _, r := range tree.Rows() {
		v.Rows = append(v.Rows, Row{Expense: r.Item, Amount: r.Value, Children: r.Children})
	}
	return v, nil
}

// Total sums the amounts of expenses.
func Total(expenses []model.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// TopCategory returns the category with the highest spending in expenses.
// Sub-expenses count toward their parent's category, looked up in all.
// Ties go to the category seen first. Returns "N/A" for no expenses.
func TopCategory(expenses, all []model.Expense) string {
	if len(expenses) == 0 {
		return "N/A"
	}

	byID := make(map[string]model.Expense, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}

	var order []string
	spend := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		rootID := e.ParentID
		if rootID == "" {
			rootID = e.ID
		}
		cat := "Unknown"
		if root, ok := byID[rootID]; ok {
			cat = root.Category
		}
		if _, seen := spend[cat]; !seen {
			order = append(order, cat)
			spend[cat] = decimal.Zero
		}
		spend[cat] = spend[cat].Add(e.Amount)
	}

	best := order[0]
	for _, cat := range order[1:] {
		if spend[cat].GreaterThan(spend[best]) {
			best = cat
		}
	}
	return best
}

// Categories returns the distinct categories of top-level expenses, sorted.
func Categories(all []model.Expense) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range all {
		if e.ParentID != "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		cats = append(cats, e.Category)
	}
	slices.Sort(cats)
	return cats
}

// FindGroup returns the category group with the given ID.
func FindGroup(groups []model.ExpenseCategoryGroup, id string) (model.ExpenseCategoryGroup, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return model.ExpenseCategoryGroup{}, false
}
