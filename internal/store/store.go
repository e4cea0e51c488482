// Package store holds the shop's dataset: the built-in seed overlaid with
// whatever the workspace has recorded on disk.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopbook-dev/shopbook/internal/accounts"
	"github.com/shopbook-dev/shopbook/internal/config"
	"github.com/shopbook-dev/shopbook/internal/directory"
	"github.com/shopbook-dev/shopbook/internal/expenses"
	"github.com/shopbook-dev/shopbook/internal/gitops"
	"github.com/shopbook-dev/shopbook/internal/inventory"
	"github.com/shopbook-dev/shopbook/internal/log"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/seed"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// Book is every collection of the shop.
type Book struct {
	// Root is the workspace directory. An empty Root keeps the book in
	// memory only.
	Root   string
	Config *config.Config
	Now    func() time.Time

	Accounts          *accounts.Service
	Expenses          []model.Expense
	ExpenseCategories []model.ExpenseCategoryGroup
	Sales             []model.Sale
	Purchases         []model.Purchase
	Suppliers         []model.Supplier
	Contacts          []model.Contact
	Staff             []model.User
	TaxRates          []model.TaxRate
	Inventory         []model.InventoryItem
	Products          []model.Product
	Branches          *directory.Branches
	Transfers         *inventory.TransferLog
	Variations        *inventory.Catalog
	Settlements       []model.Settlement
	CashFlow          []model.CashFlowActivity

	log *log.Logger
}

// New returns an in-memory book holding the built-in dataset.
func New(cfg *config.Config, logger *log.Logger) *Book {
	if cfg == nil {
		cfg = config.Default("Shopbook")
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Book{
		Config:            cfg,
		Now:               time.Now,
		Accounts:          accounts.NewService(accounts.DefaultChart()),
		Expenses:          seed.Expenses(),
		ExpenseCategories: seed.ExpenseCategories(),
		Sales:             seed.Sales(),
		Purchases:         seed.Purchases(),
		Suppliers:         seed.Suppliers(),
		Contacts:          seed.Contacts(),
		Staff:             seed.Staff(),
		TaxRates:          seed.TaxRates(),
		Inventory:         seed.Inventory(),
		Products:          seed.Products(),
		Branches:          directory.NewBranches(seed.Branches()),
		Transfers:         inventory.NewTransferLog(seed.Transfers()),
		Variations:        inventory.NewCatalog(seed.Variations()),
		Settlements:       seed.Settlements(),
		CashFlow:          seed.CashFlow(),
		log:               logger.WithComponent(log.ComponentStore),
	}
}

// LoadConfig reads the workspace config at dir, or returns the defaults
// when the workspace has none.
func LoadConfig(dir string) (*config.Config, error) {
	path := filepath.Join(dir, config.FileName)
	if !exists(path) {
		return config.Default("Shopbook"), nil
	}
	return config.Load(path)
}

// Open loads the workspace at dir with its own config.
func Open(dir string, logger *log.Logger) (*Book, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	return OpenConfig(dir, cfg, logger)
}

// OpenConfig loads the workspace at dir using cfg. The chart of accounts and
// expense files are read when present; everything else comes from the
// built-in dataset.
func OpenConfig(dir string, cfg *config.Config, logger *log.Logger) (*Book, error) {
	b := New(cfg, logger)
	b.Root = dir

	if exists(filepath.Join(dir, accounts.RelPath)) {
		svc, err := accounts.Load(dir)
		if err != nil {
			return nil, err
		}
		b.Accounts = svc
		b.log.Debug("overlaid chart of accounts", log.FieldOperation, log.OpLoad, log.FieldCount, len(svc.All()))
	}

	if exists(filepath.Join(dir, expenses.RelPath)) {
		list, err := loadExpenses(dir)
		if err != nil {
			return nil, err
		}
		b.Expenses = list
		b.log.Debug("overlaid expenses", log.FieldOperation, log.OpLoad, log.FieldCount, len(list))
	}

	if id := cfg.Tax.DefaultRateID; id != "" && !directory.SetDefault(b.TaxRates, id) {
		b.log.Warn("configured default tax rate does not exist", "tax_rate", id)
	}
	return b, nil
}

// Init writes a new workspace at dir: the config, the chart of accounts,
// the expense book, the logs directory and a .gitignore. It does not touch
// git.
func Init(dir string, cfg *config.Config) error {
	for _, d := range []string{"accounts", "expenses", "logs", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := accounts.NewService(accounts.DefaultChart()).Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	if err := saveExpenses(dir, seed.Expenses()); err != nil {
		return err
	}

	gitignore := "exports/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// Committer returns the git committer configured for the workspace.
func (b *Book) Committer() gitops.Committer {
	return gitops.Committer{
		Dir:         b.Root,
		Enabled:     b.Root != "" && b.Config.Git.AutoCommit,
		AuthorName:  b.Config.Git.AuthorName,
		AuthorEmail: b.Config.Git.AuthorEmail,
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func loadExpenses(root string) ([]model.Expense, error) {
	f, err := os.Open(filepath.Join(root, expenses.RelPath))
	if err != nil {
		return nil, fmt.Errorf("opening expenses: %w", err)
	}
	defer f.Close()

	list, err := expenses.ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	return list, nil
}

func saveExpenses(root string, list []model.Expense) error {
	path := filepath.Join(root, expenses.RelPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating expenses dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating expenses file: %w", err)
	}
	defer f.Close()

	if err := expenses.WriteExpenses(f, list); err != nil {
		return fmt.Errorf("writing expenses: %w", err)
	}
	return nil
}
