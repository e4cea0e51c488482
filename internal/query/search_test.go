package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	SKU  string
	Name string
}

type order struct {
	ID       string
	Customer string
	Total    decimal.Decimal
	Date     time.Time
	Items    int
	Lines    []line
	note     string
}

func orders() []order {
	return []order{
		{ID: "O1", Customer: "John Doe", Total: decimal.RequireFromString("899.99"), Date: time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC), Items: 1,
			Lines: []line{{SKU: "IP15P", Name: "iPhone 15 Pro"}}},
		{ID: "O2", Customer: "Jane Smith", Total: decimal.RequireFromString("45.5"), Date: time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC), Items: 2,
			Lines: []line{{SKU: "ANK-PB", Name: "Anker Power Bank"}}, note: "secret"},
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term", "", []string{"x"}, true},
		{"case insensitive", "APPLE", []string{"Apple Inc."}, true},
		{"second field", "cook", []string{"Apple Inc.", "Tim Cook"}, true},
		{"no match", "samsung", []string{"Apple Inc.", "Tim Cook"}, false},
		{"no fields", "x", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.term, tt.fields...))
		})
	}
}

func TestSearch_EmptyTermIsIdentity(t *testing.T) {
	in := orders()
	got := Search(in, "", func(o order) []string { return []string{o.Customer} })
	assert.Equal(t, in, got)
	assert.Equal(t, in, SearchAll(in, ""))
}

func TestSearch_FixedFields(t *testing.T) {
	got := Search(orders(), "jane", func(o order) []string { return []string{o.Customer} })
	require.Len(t, got, 1)
	assert.Equal(t, "O2", got[0].ID)

	got = Search(orders(), "O1", func(o order) []string { return []string{o.Customer} })
	assert.Empty(t, got, "ID is not a searched field")
}

func TestSearchAll_NestedAndTyped(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"anker", []string{"O2"}},
		{"ip15p", []string{"O1"}},
		{"899.99", []string{"O1"}},
		{"2023-10-25", []string{"O2"}},
		{"2023-10", []string{"O1", "O2"}},
		{"secret", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var ids []string
			for _, o := range SearchAll(orders(), tt.term) {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestValues(t *testing.T) {
	vals := Values(orders()[0])
	assert.Contains(t, vals, "John Doe")
	assert.Contains(t, vals, "1")
	assert.Contains(t, vals, "iPhone 15 Pro")
	assert.Contains(t, vals, "2023-10-26")
}
