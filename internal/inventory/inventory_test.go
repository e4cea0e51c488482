package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

func itemIDs(items []model.InventoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestLowStock(t *testing.T) {
	low := LowStock(seed.Inventory(), DefaultLowStockThreshold)
	assert.Equal(t, []string{"INV002", "INV006", "INV007", "INV008", "INV013", "INV014"}, itemIDs(low))

	assert.Empty(t, LowStock(seed.Inventory(), 0))
	assert.False(t, IsLow(seed.Inventory()[8], DefaultLowStockThreshold), "20 units is not below 20")
}

func TestSearch(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"repair center", []string{"INV005"}},
		{"IP14PM-3LLDPP", []string{"INV007", "INV008"}},
		{"tablet", []string{"INV013", "INV014"}},
		{"19.99", []string{"INV003"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, itemIDs(Search(seed.Inventory(), tt.term)))
		})
	}
	assert.Len(t, Search(seed.Inventory(), ""), 14)
}

func TestSearchProducts_Variations(t *testing.T) {
	got := SearchProducts(seed.Products(), "A2848")
	require.Len(t, got, 1)
	assert.Equal(t, "PR-000001", got[0].ProductNo)

	got = SearchProducts(seed.Products(), "6th gen")
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryTablet, got[0].Category)
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct(seed.Products(), "PR-000011")
	require.True(t, ok)
	assert.Equal(t, "ANK-PB-10K-BLK", p.ID)

	p, ok = FindProduct(seed.Products(), "SMP-OLED-S22")
	require.True(t, ok)
	assert.Equal(t, "Samsung Parts", p.Brand)

	_, ok = FindProduct(seed.Products(), "nope")
	assert.False(t, ok)
}

func TestStockLevel(t *testing.T) {
	assert.Equal(t, StockHigh, StockLevel(120))
	assert.Equal(t, StockMedium, StockLevel(50))
	assert.Equal(t, StockMedium, StockLevel(11))
	assert.Equal(t, StockLow, StockLevel(10))
}

func TestCatalog_AddValue(t *testing.T) {
	c := NewCatalog(seed.Variations())

	added, err := c.AddValue("ram", "  2GB ")
	require.NoError(t, err)
	assert.True(t, added)
	ram, _ := c.Get("ram")
	assert.Equal(t, "128GB", ram.Values[0], "values are sorted lexically")
	assert.Contains(t, ram.Values, "2GB")
	assert.Len(t, ram.Values, 11)

	added, err = c.AddValue("ram", "8GB")
	require.NoError(t, err)
	assert.False(t, added, "duplicate")

	added, err = c.AddValue("ram", "   ")
	require.NoError(t, err)
	assert.False(t, added, "blank")

	added, err = c.AddValue("model_code", "A2848")
	require.NoError(t, err)
	assert.True(t, added)
	mc, _ := c.Get("model_code")
	assert.Equal(t, []string{"A2848"}, mc.Values)

	_, err = c.AddValue("weight", "200g")
	assert.Error(t, err)
}

func TestCatalog_DoesNotAliasSeed(t *testing.T) {
	attrs := seed.Variations()
	c := NewCatalog(attrs)
	_, err := c.AddValue("ram", "1GB")
	require.NoError(t, err)
	assert.Len(t, attrs[0].Values, 10)
}

func TestTransferLog_Initiate(t *testing.T) {
	log := NewTransferLog(seed.Transfers())
	got := log.Initiate(model.StockTransfer{
		ID: "ST005", Date: model.Day(2023, 10, 29), FromBranch: "Main Store", ToBranch: "Repair Center",
		ProductName: "Anker Power Bank 10000mAh Black", Quantity: 3, Status: model.TransferCompleted,
	})

	assert.Equal(t, model.TransferInTransit, got.Status)
	require.Len(t, log.All(), 5)
	assert.Equal(t, "ST005", log.All()[0].ID)
	assert.Len(t, log.InTransit(), 2)
}
