package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/config"
	"github.com/shopbook-dev/shopbook/internal/export"
	"github.com/shopbook-dev/shopbook/internal/log"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/render"
	"github.com/shopbook-dev/shopbook/internal/store"
)

// app is the state shared by every command of one invocation.
type app struct {
	dir      string
	logLevel string
	now      func() time.Time

	cfg    *config.Config
	logger *log.Logger
}

// setup loads the workspace config, applies .env and environment overrides
// and builds the logger. It runs before every command.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := filepath.Abs(a.dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	a.dir = dir

	cfg, err := store.LoadConfig(dir)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(filepath.Join(dir, ".env")); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", config.FileName, err)
	}
	a.cfg = cfg

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName = a.logLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = log.New(log.Config{Level: level, Output: cmd.ErrOrStderr()})
	return nil
}

// book opens the workspace dataset.
func (a *app) book() (*store.Book, error) {
	b, err := store.OpenConfig(a.dir, a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("opening workspace: %w", err)
	}
	if a.now != nil {
		b.Now = a.now
	}
	return b, nil
}

func (a *app) money() render.Money {
	return render.NewMoney(a.cfg.Business.Currency)
}

// listFlags are the flags shared by list commands.
type listFlags struct {
	search string
	sort   string
	desc   bool
	export string
	keys   []string
}

func (f *listFlags) register(cmd *cobra.Command, search bool, defaultSort string, keys []string) {
	if search {
		cmd.Flags().StringVar(&f.search, "search", "", "keep rows containing this text")
	}
	f.keys = keys
	if keys != nil {
		cmd.Flags().StringVar(&f.sort, "sort", defaultSort, fmt.Sprintf("sort key (%s)", strings.Join(keys, ", ")))
		cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending, by the first sort key when --sort is not given")
	}
	cmd.Flags().StringVar(&f.export, "export", "", "write the rows to a .csv or .xlsx file instead of printing")
}

// order returns the requested sort order, or def when neither --sort nor
// --desc was given. A bare --desc sorts by def's key, or by the first sort
// key when def has none.
func (f *listFlags) order(cmd *cobra.Command, def query.Order) query.Order {
	if !cmd.Flags().Changed("sort") && !cmd.Flags().Changed("desc") {
		return def
	}
	key := f.sort
	if key == "" {
		key = def.Key
	}
	if key == "" && len(f.keys) > 0 {
		key = f.keys[0]
	}
	dir := query.Asc
	if f.desc {
		dir = query.Desc
	}
	return query.Order{Key: key, Direction: dir}
}

// percentCell is a percentage shown with a % sign.
type percentCell decimal.Decimal

func (p percentCell) String() string {
	return render.Percent(decimal.Decimal(p))
}

// view is a table that can be printed or exported.
type view struct {
	title   string
	headers []string
	rows    [][]any
	numeric []int
	footer  []any
}

// emit prints the view, or exports it when path is set.
func (v view) emit(cmd *cobra.Command, m render.Money, path string) error {
	if path != "" {
		return exportSheet(cmd, path, export.Sheet{Name: v.title, Headers: v.headers, Rows: v.rows})
	}
	t := render.Table{Title: v.title, Headers: v.headers, Numeric: v.numeric}
	for _, r := range v.rows {
		t.Rows = append(t.Rows, cells(m, r))
	}
	if v.footer != nil {
		t.Footer = cells(m, v.footer)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}

func exportSheet(cmd *cobra.Command, path string, s export.Sheet) error {
	if err := export.WriteFile(path, s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(s.Rows), path)
	return nil
}

func cells(m render.Money, row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = cell(m, v)
	}
	return out
}

func cell(m render.Money, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return m.Amount(x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(model.DateFormat)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// parseDate parses an optional YYYY-MM-DD flag value.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return model.ParseDay(s)
}

// parseAmount parses a money flag value; an empty string is zero.
func parseAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return d, nil
}
