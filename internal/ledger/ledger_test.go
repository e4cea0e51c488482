package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func purchaseIDs(ps []model.Purchase) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func saleIDs(ss []model.Sale) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}

func TestNewPayables(t *testing.T) {
	p := NewPayables(seed.Purchases(), "")
	assert.Equal(t, []string{"P002", "P004", "P005"}, purchaseIDs(p.Purchases))
	assert.True(t, p.Total.Equal(dec("13995")), "total %s", p.Total)
	assert.True(t, p.Overdue.Equal(dec("2000")))
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, 1, p.OverdueCount)
}

func TestNewPayables_Search(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"google", []string{"P005"}},
		{"INV-S456", []string{"P002"}},
		{"galaxy", []string{"P002", "P004"}},
		{"apple", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, purchaseIDs(NewPayables(seed.Purchases(), tt.term).Purchases))
		})
	}
}

func TestNewReceivables(t *testing.T) {
	r := NewReceivables(seed.Sales(), "")
	assert.Equal(t, []string{"S003", "S006"}, saleIDs(r.Sales))
	assert.True(t, r.Total.Equal(dec("225")))
	assert.True(t, r.Overdue.Equal(dec("75")))
	assert.Equal(t, 1, r.OverdueCount)

	r = NewReceivables(seed.Sales(), "emily")
	assert.Equal(t, []string{"S006"}, saleIDs(r.Sales))
	assert.True(t, r.Total.Equal(dec("75")))
}

func TestPurchaseFilter(t *testing.T) {
	all := seed.Purchases()
	tests := []struct {
		name   string
		filter PurchaseFilter
		want   []string
	}{
		{"none", PurchaseFilter{}, purchaseIDs(all)},
		{"supplier", PurchaseFilter{Search: "anker"}, []string{"P003", "P007"}},
		{"line item product id", PurchaseFilter{Search: "SPG-TA"}, []string{"P004", "P007"}},
		{"status", PurchaseFilter{Status: model.PurchaseUnpaid}, []string{"P002", "P005"}},
		{"search and status", PurchaseFilter{Search: "spigen", Status: model.PurchasePaid}, []string{"P007"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, purchaseIDs(tt.filter.Apply(all)))
		})
	}
}

func TestFindPurchase(t *testing.T) {
	p, ok := FindPurchase(seed.Purchases(), "INV-G101")
	require.True(t, ok)
	assert.Equal(t, "P004", p.ID)

	_, ok = FindPurchase(seed.Purchases(), "P999")
	assert.False(t, ok)
}

func TestSaleFilter(t *testing.T) {
	all := seed.Sales()
	minT, maxT := dec("50"), dec("900")
	tests := []struct {
		name   string
		filter SaleFilter
		want   []string
	}{
		{"none", SaleFilter{}, saleIDs(all)},
		{"order id", SaleFilter{OrderID: "s00"}, saleIDs(all)},
		{"customer", SaleFilter{Customer: "smith"}, []string{"S002"}},
		{"amount range", SaleFilter{MinTotal: &minT, MaxTotal: &maxT}, []string{"S001", "S003", "S006", "S007"}},
		{"status", SaleFilter{Status: model.PaymentOverdue}, []string{"S006"}},
		{"dates", SaleFilter{From: model.Day(2023, 10, 24), To: model.Day(2023, 10, 25)}, []string{"S003", "S004", "S005"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, saleIDs(tt.filter.Apply(all)))
		})
	}
}

func TestSalesSort(t *testing.T) {
	sorted, err := query.Apply(seed.Sales(), query.Order{Key: "total", Direction: query.Desc}, SaleSortKeys)
	require.NoError(t, err)
	assert.Equal(t, "S005", sorted[0].ID)
	assert.Equal(t, "S004", sorted[len(sorted)-1].ID)
}

func TestRecent(t *testing.T) {
	assert.Len(t, Recent(seed.Sales(), 5), 5)
	assert.Len(t, Recent(seed.Sales()[:2], 5), 2)
}

func TestSalesTotal(t *testing.T) {
	assert.True(t, SalesTotal(seed.Sales()).Equal(dec("2500.46")))
}
