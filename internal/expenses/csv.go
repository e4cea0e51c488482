package expenses

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopbook-dev/shopbook/internal/model"
)

const (
	numFields = 7
	colID     = 0
	colParent = 1
	colDate   = 2
	colCat    = 3
	colPayee  = 4
	colAmount = 5
	colStatus = 6
)

// Header is the column row of expenses.csv.
var Header = []string{"id", "parent_id", "date", "category", "payee", "amount", "status"}

// ReadExpenses reads expenses.csv.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// WriteExpenses writes expenses.csv.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colParent] = e.ParentID
	row[colDate] = e.Date.Format(model.DateFormat)
	row[colCat] = e.Category
	row[colPayee] = e.Payee
	row[colAmount] = e.Amount.StringFixed(2)
	row[colStatus] = string(e.Status)
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDay(record[colDate])
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	status := model.ExpenseStatus(record[colStatus])
	if !status.Valid() {
		return model.Expense{}, fmt.Errorf("unknown status %q", record[colStatus])
	}

	return model.Expense{
		ID:       record[colID],
		ParentID: record[colParent],
		Date:     date,
		Category: record[colCat],
		Payee:    record[colPayee],
		Amount:   amount,
		Status:   status,
	}, nil
}

// ExportHeader is the first line of an expense export.
const ExportHeader = "ID,Date,Category,Payee,Amount,Status,Parent ID"

// Export writes expenses in the spreadsheet export layout. The payee is
// always quoted; other fields are written as is.
func Export(w io.Writer, expenses []model.Expense) error {
	var b strings.Builder
	b.WriteString(ExportHeader)
	for _, e := range expenses {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			e.ID,
			e.Date.Format(model.DateFormat),
			e.Category,
			`"` + strings.ReplaceAll(e.Payee, `"`, `""`) + `"`,
			e.Amount.String(),
			string(e.Status),
			e.ParentID,
		}, ","))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing expense export: %w", err)
	}
	return nil
}
