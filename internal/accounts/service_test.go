package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/model"
)

func TestService_Lookup(t *testing.T) {
	svc := NewService(DefaultChart())

	a, ok := svc.Get("1021")
	require.True(t, ok)
	assert.Equal(t, "Checking Account", a.Name)

	assert.True(t, svc.Exists("6020"))
	assert.False(t, svc.Exists("9999"))

	assert.Len(t, svc.ByType(model.AccountTypeLiability), 3)
	assert.Len(t, svc.Children("1020"), 2)
	assert.Empty(t, svc.Children("1010"))
}

func TestService_Add(t *testing.T) {
	svc := NewService(DefaultChart())
	svc.Add(model.Account{ID: "6050", Name: "Bank Fees", Type: model.AccountTypeExpense, SubType: model.SubTypeOperatingExpense})
	assert.True(t, svc.Exists("6050"))
	assert.Len(t, svc.All(), len(DefaultChart())+1)
}

func TestService_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(DefaultChart())
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, loaded.All(), len(DefaultChart()))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func findRow(t *testing.T, groups []Group, id string) Row {
	t.Helper()
	for _, g := range groups {
		for _, r := range g.Rows {
			if r.Account.ID == id {
				return r
			}
		}
	}
	t.Fatalf("row %s not found", id)
	return Row{}
}

func TestChart_RollsUpChildren(t *testing.T) {
	groups := NewService(DefaultChart()).Chart("")
	require.Len(t, groups, 5)
	for i, at := range model.AccountTypes {
		assert.Equal(t, at, groups[i].Type)
	}

	bank := findRow(t, groups, "1020")
	assert.True(t, bank.Balance.Equal(decimal.RequireFromString("25480.50")), "got %s", bank.Balance)
	require.Len(t, bank.Children, 2)

	salaries := findRow(t, groups, "6020")
	assert.True(t, salaries.Balance.Equal(decimal.NewFromInt(75000)))
}

func TestChart_GroupTotals(t *testing.T) {
	groups := NewService(DefaultChart()).Chart("")
	want := map[model.AccountType]string{
		model.AccountTypeAsset:     "171781.25",
		model.AccountTypeLiability: "26095.25",
		model.AccountTypeEquity:    "146186",
		model.AccountTypeRevenue:   "393000",
		model.AccountTypeExpense:   "325240",
	}
	for _, g := range groups {
		assert.True(t, g.Total.Equal(decimal.RequireFromString(want[g.Type])), "%s total %s", g.Type, g.Total)
	}
}

func TestChart_SearchKeepsParents(t *testing.T) {
	groups := NewService(DefaultChart()).Chart("savings")
	require.Len(t, groups, 1)
	assert.Equal(t, model.AccountTypeAsset, groups[0].Type)
	require.Len(t, groups[0].Rows, 1)

	row := groups[0].Rows[0]
	assert.Equal(t, "1020", row.Account.ID)
	require.Len(t, row.Children, 1)
	assert.Equal(t, "1022", row.Children[0].ID)
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(7000)))
}

func TestChart_SearchByID(t *testing.T) {
	groups := NewService(DefaultChart()).Chart("4100")
	require.Len(t, groups, 1)
	assert.Equal(t, "Repair Services Revenue", groups[0].Rows[0].Account.Name)
}

func TestChart_NoMatches(t *testing.T) {
	assert.Empty(t, NewService(DefaultChart()).Chart("zzz"))
}
