package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/rollup"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

// RelPath is the chart of accounts location inside a workspace.
const RelPath = "accounts/chart-of-accounts.csv"

// Rollup reads accounts for hierarchical totals.
var Rollup = rollup.Accessors[model.Account]{
	ID:     func(a model.Account) string { return a.ID },
	Parent: func(a model.Account) string { return a.ParentID },
	Value:  func(a model.Account) decimal.Decimal { return a.Balance },
}

// DefaultChart returns the shop's built-in chart of accounts.
func DefaultChart() []model.Account {
	return seed.Accounts()
}

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads chart-of-accounts.csv from a workspace root and returns a Service.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, RelPath))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Children returns the direct sub-accounts of id.
func (s *Service) Children(id string) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.ParentID == id && a.ID != id {
			result = append(result, a)
		}
	}
	return result
}

// Add appends an account. The caller validates it first.
func (s *Service) Add(acct model.Account) {
	s.accounts = append(s.accounts, acct)
	s.byID[acct.ID] = acct
}

// Save writes the chart of accounts to the workspace.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, filepath.Dir(RelPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(filepath.Join(root, RelPath))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// Row is a top-level account in the chart view.
type Row struct {
	Account  model.Account
	Balance  decimal.Decimal // rolled up when the account has children
	Children []model.Account
}

// Group is one account type section of the chart view.
type Group struct {
	Type  model.AccountType
	Total decimal.Decimal
	Rows  []Row
}

// Chart groups the accounts by type in statement order and rolls up
// sub-accounts. A non-empty search keeps accounts whose name or ID contains
// it, plus their parents.
func (s *Service) Chart(search string) []Group {
	accts := s.accounts
	if search != "" {
		accts = rollup.WithAncestors(accts, Rollup, func(a model.Account) bool {
			return query.Contains(search, a.Name, a.ID)
		})
	}

	parts := rollup.GroupBy(accts, func(a model.Account) model.AccountType { return a.Type }, model.AccountTypes, Rollup)

	groups := make([]Group, 0, len(parts))
	for _, p := range parts {
		g := Group{Type: p.Key, Total: p.Total}
		for _, r := range p.Tree.Rows() {
			g.Rows = append(g.Rows, Row{Account: r.Item, Balance: r.Value, Children: r.Children})
		}
		groups = append(groups, g)
	}
	return groups
}
