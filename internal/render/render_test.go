package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMoneyAmount(t *testing.T) {
	m := NewMoney("usd")
	tests := []struct {
		in   string
		want string
	}{
		{"1250.75", "$1,250.75"},
		{"0", "$0.00"},
		{"25480.5", "$25,480.50"},
		{"-45", "-$45.00"},
		{"0.005", "$0.01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Amount(dec(tt.in)), "Amount(%s)", tt.in)
	}
}

func TestMoneyStatement(t *testing.T) {
	m := NewMoney("USD")
	assert.Equal(t, "($45.00)", m.Statement(dec("-45")))
	assert.Equal(t, "$171,781.25", m.Statement(dec("171781.25")))
}

func TestNewMoneyUnknownFallsBack(t *testing.T) {
	assert.Equal(t, "USD", NewMoney("ZZZ").Code())
	assert.Equal(t, "EUR", NewMoney("eur").Code())
}

func TestPercentAndRatio(t *testing.T) {
	assert.Equal(t, "46.53%", Percent(dec("46.5308")))
	assert.Equal(t, "6.01", Ratio(dec("6.0132")))
}

func TestTableString(t *testing.T) {
	out := Table{
		Title:   "Sales",
		Headers: []string{"Order ID", "Total"},
		Rows:    [][]string{{"S001", "$899.99"}, {"S002", "$45.50"}},
		Numeric: []int{1},
		Footer:  []string{"Total", "$945.49"},
	}.String()

	assert.True(t, strings.HasPrefix(out, "Sales"))
	for _, s := range []string{"Order ID", "S001", "$899.99", "S002", "$945.49"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "No records found.")
}

func TestTableEmpty(t *testing.T) {
	out := Table{Headers: []string{"ID"}}.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "No records found.")
}

func TestTableFooterDoesNotTouchRows(t *testing.T) {
	rows := make([][]string, 1, 4)
	rows[0] = []string{"a"}
	tbl := Table{Headers: []string{"x"}, Rows: rows, Footer: []string{"total"}}
	_ = tbl.String()
	assert.Len(t, tbl.Rows, 1)
	assert.Len(t, rows[:2], 2)
	assert.Nil(t, rows[:2][1], "footer must not be written into the caller's backing array")
}

func TestTree(t *testing.T) {
	out := Tree("Asset", []Node{
		{Label: "1010 Cash on Hand"},
		{Label: "1020 Main Business Bank Account", Children: []Node{
			{Label: "1021 Checking Account"},
			{Label: "1022 Savings Account"},
		}},
	})
	for _, s := range []string{"Asset", "1010 Cash on Hand", "1021 Checking Account", "1022 Savings Account"} {
		assert.Contains(t, out, s)
	}
	assert.Less(t, strings.Index(out, "1020"), strings.Index(out, "1021"))
}

func TestStatement(t *testing.T) {
	out := Statement("Income Statement", NewMoney("USD"), []StatementLine{
		{Label: "Revenue", Blank: true},
		{Label: "Product Sales Revenue", Amount: dec("350000"), Depth: 1},
		{Label: "Sales Returns", Amount: dec("-2000"), Depth: 1},
		{Label: "Net Income", Amount: dec("67760"), Total: true},
	})
	assert.Contains(t, out, "Amount (USD)")
	assert.Contains(t, out, "  Product Sales Revenue")
	assert.Contains(t, out, "($2,000.00)")
	assert.Contains(t, out, "$67,760.00")
}

func TestCards(t *testing.T) {
	out := Cards(Card{Label: "Net Income", Value: "$67,760.00"}, Card{Label: "Overdue", Value: "$2,000.00", Bad: true, Note: "1 invoice"})
	for _, s := range []string{"Net Income", "$67,760.00", "Overdue", "1 invoice"} {
		assert.Contains(t, out, s)
	}
}
