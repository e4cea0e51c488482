package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook-dev/shopbook/internal/activity"
	"github.com/shopbook-dev/shopbook/internal/config"
	"github.com/shopbook-dev/shopbook/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, 7, 20, 9, 30, 0, 0, time.UTC)
}

// run executes the CLI in-process and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(fixedNow)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// workspace creates an initialized workspace without git.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := run(t, "init", dir, "--name", "Test Shop", "--no-git")
	require.NoError(t, err)
	return dir
}

func TestPayables(t *testing.T) {
	out, _, err := run(t, "payables", "--dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "INV-S456")
	assert.Contains(t, out, "INV-G101")
	assert.NotContains(t, out, "INV-A123", "paid invoices are not payable")
	assert.Contains(t, out, "Outstanding: $13,995.00 across 3 invoices")
	assert.Contains(t, out, "Overdue: $2,000.00 across 1")
}

func TestReceivables_Search(t *testing.T) {
	out, _, err := run(t, "receivables", "--dir", t.TempDir(), "--search", "emily")
	require.NoError(t, err)

	assert.Contains(t, out, "S006")
	assert.NotContains(t, out, "S003")
	assert.Contains(t, out, "Outstanding: $75.00 across 1 orders")
}

func TestSales_Filters(t *testing.T) {
	out, _, err := run(t, "sales", "--dir", t.TempDir(), "--status", "Paid", "--min", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "David Williams")
	assert.NotContains(t, out, "Jane Smith")
	assert.Contains(t, out, "$2,099.99")
}

func TestSales_InvalidInput(t *testing.T) {
	_, _, err := run(t, "sales", "--dir", t.TempDir(), "--status", "Lost")
	assert.ErrorContains(t, err, "invalid --status")

	_, _, err = run(t, "sales", "--dir", t.TempDir(), "--sort", "weight")
	assert.ErrorContains(t, err, "unknown sort key")

	_, _, err = run(t, "sales", "--dir", t.TempDir(), "--from", "yesterday")
	assert.Error(t, err)
}

func TestSales_Export(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	out, _, err := run(t, "sales", "--dir", dir, "--export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 7 rows")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Order ID,Date,Customer,Items,Total,Status")
	assert.Contains(t, string(data), "S001")
}

func TestPurchases_Detail(t *testing.T) {
	out, _, err := run(t, "purchases", "--dir", t.TempDir(), "INV-K991")
	require.NoError(t, err)

	assert.Contains(t, out, "P007")
	assert.Contains(t, out, "Anker Power Bank 10000mAh Black")
	assert.Contains(t, out, "$1,750.00", "subtotal")
	assert.Contains(t, out, "$1,825.00", "grand total")

	_, _, err = run(t, "purchases", "--dir", t.TempDir(), "INV-NOPE")
	assert.ErrorContains(t, err, "not found")
}

func TestInventory_BareDescSortsByFirstKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.csv")
	_, _, err := run(t, "inventory", "--dir", dir, "--desc", "--export", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 15)
	assert.True(t, strings.HasPrefix(lines[1], "INV013,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "INV014,"), lines[2])
}

func TestInventory_AlertColumn(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		search string
		alert  string
	}{
		{"GS23U-512-WHT", "low"},
		{"IP14PM-4LLSBK-0", ""},
	} {
		path := filepath.Join(dir, tc.search+".csv")
		_, _, err := run(t, "inventory", "--dir", dir, "--search", tc.search, "--export", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2, tc.search)
		assert.True(t, strings.HasSuffix(lines[0], ",Alert"))
		fields := strings.Split(lines[1], ",")
		assert.Equal(t, tc.alert, fields[len(fields)-1], tc.search)
	}
}

func TestLowStock_Threshold(t *testing.T) {
	out, _, err := run(t, "low-stock", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "below 20")
	assert.Contains(t, out, "INV002")

	out, _, err = run(t, "low-stock", "--dir", t.TempDir(), "--threshold", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found.")
}

func TestLowStock_ConfigThreshold(t *testing.T) {
	t.Setenv(config.EnvLowStock, "")
	require.NoError(t, os.Unsetenv(config.EnvLowStock))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHOPBOOK_LOW_STOCK=0\n"), 0o644))

	out, _, err := run(t, "low-stock", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "below 0")
}

func TestProducts_Detail(t *testing.T) {
	out, _, err := run(t, "products", "--dir", t.TempDir(), "PR-000001")
	require.NoError(t, err)
	assert.Contains(t, out, "IP15P-256-BLK-US-NEW")
	assert.Contains(t, out, "Model code")
}

func TestVariationsAdd(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "variations", "add", "ram", " 2GB ", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `Added "2GB" to ram`)

	out, _, err = run(t, "variations", "add", "ram", "8GB", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "already listed")

	_, _, err = run(t, "variations", "add", "weight", "200g", "--dir", dir)
	assert.Error(t, err)
}

func TestTransfers_InTransit(t *testing.T) {
	out, _, err := run(t, "transfers", "--dir", t.TempDir(), "--in-transit")
	require.NoError(t, err)
	assert.Contains(t, out, "ST003")
	assert.NotContains(t, out, "ST001")
}

func TestStaff_BranchNames(t *testing.T) {
	out, _, err := run(t, "staff", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Repair Center")
	assert.Contains(t, out, "6 users, 5 active")
}

func TestContacts_Leads(t *testing.T) {
	out, _, err := run(t, "contacts", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "6 contacts, 2 leads")
}

func TestSuppliers_Total(t *testing.T) {
	out, _, err := run(t, "suppliers", "--dir", t.TempDir(), "--search", "samsung")
	require.NoError(t, err)
	assert.Contains(t, out, "Samsung Parts")
	assert.NotContains(t, out, "Apple Inc.")
	assert.Contains(t, out, "$7,745.00")
}

func TestDashboard(t *testing.T) {
	out, _, err := run(t, "dashboard", "--dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "Payables")
	assert.Contains(t, out, "$13,995.00")
	assert.Contains(t, out, "Recent Sales")
	assert.Contains(t, out, "S001")
	assert.NotContains(t, out, "S007", "only the five newest sales")
	assert.Contains(t, out, "Low Stock Alerts")
}

func TestAddSale(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "sale", "--dir", dir, "--customer", "Walk-in", "--items", "2", "--total", "59.90")
	require.NoError(t, err)
	assert.Contains(t, out, "Added sale S008")

	entries, err := activity.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sale", entries[0].Form)
	assert.Equal(t, "S008", entries[0].RecordID)
	assert.True(t, entries[0].Timestamp.Equal(fixedNow()))
}

func TestAddSale_ValidationErrors(t *testing.T) {
	dir := workspace(t)
	_, stderr, err := run(t, "add", "sale", "--dir", dir, "--date", "2024-07-19", "--items", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sale not saved: 3 invalid field(s)")
	assert.Contains(t, stderr, "date: Date cannot be in the past.")
	assert.Contains(t, stderr, "customer: Customer name is required.")
	assert.Contains(t, stderr, "items: Items must be greater than 0.")

	_, err = os.Stat(filepath.Join(dir, activity.RelPath))
	assert.True(t, os.IsNotExist(err), "rejected forms are not logged")
}

func TestAddExpense_Persists(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "expense", "--dir", dir,
		"--category", "Rent", "--payee", "Landlord", "--amount", "1500", "--status", "Paid")
	require.NoError(t, err)
	assert.Contains(t, out, "Added expense EXP008")

	out, _, err = run(t, "expenses", "--dir", dir, "--from", "2024-07-20")
	require.NoError(t, err)
	assert.Contains(t, out, "EXP008")
	assert.Contains(t, out, "Landlord")
}

func TestAddAccount_Persists(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "account", "--dir", dir,
		"--id", "1023", "--name", "Petty Cash Tin", "--type", "Asset", "--sub-type", model.SubTypeCurrentAsset,
		"--parent", "1020", "--balance", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "Added account 1023")

	out, _, err = run(t, "accounts", "--dir", dir, "--search", "petty")
	require.NoError(t, err)
	assert.Contains(t, out, "Petty Cash Tin")
	assert.Contains(t, out, "Main Business Bank Account", "ancestors of matches are kept")
}

func TestAddPurchase(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "purchase", "SUP003", "--dir", dir,
		"--invoice", "INV-K1000", "--item", "ANK-PB-10K-BLK:10:25", "--shipping", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "Added purchase P008")
	assert.Contains(t, out, "Invoice INV-K1000, grand total $265.00")

	_, _, err = run(t, "add", "purchase", "SUP999", "--dir", dir, "--item", "X:1:1")
	assert.ErrorContains(t, err, "not found")

	_, _, err = run(t, "add", "purchase", "SUP003", "--dir", dir, "--item", "ANK-PB-10K-BLK:ten:25")
	assert.ErrorContains(t, err, "quantity")
}

func TestAddPurchase_GeneralSeller(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "purchase", model.GeneralSellerID, "--dir", dir, "--item", "Used iPhone 12:1:200")
	require.NoError(t, err)
	assert.Contains(t, out, "Invoice GS-")
}

func TestAddPayment(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "payment", "INV-S456", "--dir", dir, "--amount", "5495", "--method", "Bank Transfer")
	require.NoError(t, err)
	assert.Contains(t, out, "Invoice INV-S456 has been marked as paid.")

	_, stderr, err := run(t, "add", "payment", "INV-A123", "--dir", dir, "--amount", "1", "--method", "Cash")
	require.Error(t, err)
	assert.Contains(t, stderr, "Invoice is already paid.")
}

func TestAddTransfer(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "transfer", "--dir", dir,
		"--from", "Main Store", "--to", "Repair Center", "--product", "Anker Power Bank 10000mAh Black", "--quantity", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Added transfer ST005")

	_, _, err = run(t, "add", "transfer", "--dir", dir,
		"--from", "Main Store", "--to", "Moon Base", "--product", "Case", "--quantity", "1")
	assert.ErrorContains(t, err, "not found")
}

func TestAddUser(t *testing.T) {
	dir := workspace(t)
	out, _, err := run(t, "add", "user", "--dir", dir,
		"--name", "Grace Hopper", "--email", "grace@phonestore.com", "--branch", "Repair Center",
		"--password", "s3cretpass", "--confirm-password", "s3cretpass")
	require.NoError(t, err)
	assert.Contains(t, out, "Added user USR007")
}

func TestAddParties(t *testing.T) {
	dir := workspace(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"supplier", []string{"add", "supplier", "--name", "Belkin", "--contact", "Chet Pipkin", "--email", "sales@belkin.com"}, "Added supplier SUP007"},
		{"contact", []string{"add", "contact", "--name", "Ana Lima", "--email", "ana@example.com", "--phone", "555-0303", "--type", "Lead"}, "Added contact C007"},
		{"tax rate", []string{"add", "tax-rate", "--name", "City Tax", "--rate", "1.5"}, "Added tax rate TAX004"},
		{"settlement", []string{"add", "settlement", "--amount", "500", "--type", "Cash Deposit", "--from", "Cash on Hand", "--to", "Checking Account"}, "Added settlement SET005"},
		{"branch", []string{"add", "branch", "--name", "Airport Kiosk", "--address", "Terminal 2"}, "Added branch B005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append(tt.args, "--dir", dir)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
