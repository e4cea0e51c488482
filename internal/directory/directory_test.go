package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

func TestSearchSuppliers_Apple(t *testing.T) {
	got := SearchSuppliers(seed.Suppliers(), "apple")
	require.Len(t, got, 1)
	assert.Equal(t, "Apple Inc.", got[0].Name)
	assert.Equal(t, "SUP001", got[0].ID)
}

func TestSearchSuppliers_ContactPerson(t *testing.T) {
	got := SearchSuppliers(seed.Suppliers(), "LEE")
	require.Len(t, got, 1)
	assert.Equal(t, "Samsung Electronics", got[0].Name)

	assert.Empty(t, SearchSuppliers(seed.Suppliers(), "anker.com"), "email is not searched")
	assert.Len(t, SearchSuppliers(seed.Suppliers(), ""), 7)
}

func TestSupplierSort(t *testing.T) {
	got, err := query.Apply(seed.Suppliers(), DefaultSupplierOrder, SupplierSortKeys)
	require.NoError(t, err)
	assert.Equal(t, "Anker Innovations", got[0].Name)

	got, err = query.Apply(seed.Suppliers(), query.Order{Key: "totalSpent", Direction: query.Desc}, SupplierSortKeys)
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", got[0].Name)
	assert.Equal(t, "General Seller", got[len(got)-1].Name)
}

func TestTotalSpent(t *testing.T) {
	assert.Equal(t, "31285", TotalSpent(seed.Suppliers()).String())
}

func TestFindSupplier(t *testing.T) {
	s, ok := FindSupplier(seed.Suppliers(), "Google LLC")
	require.True(t, ok)
	assert.Equal(t, "SUP005", s.ID)

	s, ok = FindSupplier(seed.Suppliers(), model.GeneralSellerID)
	require.True(t, ok)
	assert.Equal(t, "General Seller", s.Name)
}

func TestSearchContacts(t *testing.T) {
	tests := []struct {
		term string
		want int
	}{
		{"jones & co", 1},
		{"example.com", 5},
		{"tech", 1},
		{"", 6},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Len(t, SearchContacts(seed.Contacts(), tt.term), tt.want)
		})
	}
	assert.Equal(t, 2, CountLeads(seed.Contacts()))
}

func TestContactDefaultOrder(t *testing.T) {
	got, err := query.Apply(seed.Contacts(), DefaultContactOrder, ContactSortKeys)
	require.NoError(t, err)
	assert.Equal(t, "C001", got[0].ID)
	assert.Equal(t, "C006", got[len(got)-1].ID)
}

func TestStaff(t *testing.T) {
	got := SearchStaff(seed.Staff(), "phonestore.com")
	assert.Len(t, got, 6)
	got = SearchStaff(seed.Staff(), "alice")
	require.Len(t, got, 1)
	assert.Equal(t, model.RoleManager, got[0].Role)

	assert.Equal(t, 5, CountActive(seed.Staff()))

	sorted, err := query.Apply(seed.Staff(), DefaultStaffOrder, StaffSortKeys)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", sorted[0].Name)
	assert.Equal(t, "Edward Nygma", sorted[len(sorted)-1].Name)
}

func TestBranches(t *testing.T) {
	b := NewBranches(seed.Branches())
	assert.Equal(t, "Repair Center", b.Name("B003"))
	assert.Equal(t, "N/A", b.Name("B999"))
	assert.True(t, b.Exists("Warehouse A"))
	assert.True(t, b.Exists("B004"))
	assert.False(t, b.Exists("Warehouse B"))

	b.Add(model.Branch{ID: "B005", Name: "Warehouse B"})
	assert.True(t, b.Exists("Warehouse B"))
	assert.Equal(t, "Warehouse B", b.Name("B005"))
	assert.Len(t, b.All(), 5)
}

func TestDefaultTaxRate(t *testing.T) {
	r, ok := DefaultTaxRate(seed.TaxRates())
	require.True(t, ok)
	assert.Equal(t, "TAX001", r.ID)

	rates := seed.TaxRates()
	require.True(t, SetDefault(rates, "TAX002"))
	r, _ = DefaultTaxRate(rates)
	assert.Equal(t, "TAX002", r.ID)
	assert.False(t, rates[0].IsDefault)

	assert.False(t, SetDefault(rates, "TAX999"))
	_, ok = DefaultTaxRate(nil)
	assert.False(t, ok)
}
