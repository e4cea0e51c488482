// Package seed holds the shop's built-in dataset. Every function returns a
// fresh slice, so callers may modify the result.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y, m, d int) time.Time {
	return model.Day(y, m, d)
}
