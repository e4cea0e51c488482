package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats decimal amounts in one currency.
type Money struct {
	code     string
	fraction int
}

// NewMoney returns a formatter for an ISO 4217 currency code. Unknown codes
// fall back to USD.
func NewMoney(code string) Money {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		cur = money.GetCurrency("USD")
	}
	return Money{code: cur.Code, fraction: cur.Fraction}
}

// Code returns the currency code.
func (m Money) Code() string {
	return m.code
}

func (m Money) money(d decimal.Decimal) *money.Money {
	minor := d.Shift(int32(m.fraction)).Round(0).IntPart()
	return money.New(minor, m.code)
}

// Amount formats d with the currency symbol and grouping, e.g. "$1,250.75"
// or "-$45.00".
func (m Money) Amount(d decimal.Decimal) string {
	return m.money(d).Display()
}

// Statement formats d the way financial statements show it: negatives in
// parentheses, e.g. "($45.00)".
func (m Money) Statement(d decimal.Decimal) string {
	if d.IsNegative() {
		return "(" + m.money(d.Abs()).Display() + ")"
	}
	return m.money(d).Display()
}

// Percent formats a percentage with two decimals, e.g. "46.53%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// Ratio formats a ratio with two decimals, e.g. "6.01".
func Ratio(d decimal.Decimal) string {
	return d.StringFixed(2)
}
