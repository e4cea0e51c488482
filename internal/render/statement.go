package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StatementLine is one line of a financial statement. Depth indents the
// label; Total lines are drawn in bold.
type StatementLine struct {
	Label  string
	Amount decimal.Decimal
	Depth  int
	Total  bool
	Blank  bool // label only, no amount
}

// Statement renders a two-column statement with negatives in parentheses.
func Statement(title string, m Money, lines []StatementLine) string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		label := strings.Repeat("  ", l.Depth) + l.Label
		amount := ""
		if !l.Blank {
			amount = m.Statement(l.Amount)
		}
		if l.Total {
			label = totalStyle.Render(label)
			amount = totalStyle.Render(amount)
		}
		rows = append(rows, []string{label, amount})
	}
	return Table{Title: title, Headers: []string{"Account", "Amount (" + m.Code() + ")"}, Rows: rows, Numeric: []int{1}}.String()
}
