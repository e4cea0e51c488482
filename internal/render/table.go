// Package render draws tables, trees and statements for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4f46e5"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
)

// Table is a header row plus data rows. Columns listed in Numeric are right
// aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Numeric []int
	Footer  []string
}

func (t Table) numeric(col int) bool {
	for _, c := range t.Numeric {
		if c == col {
			return true
		}
	}
	return false
}

// String renders the table. An empty table renders its headers and a
// "No records found." line.
func (t Table) String() string {
	rows := t.Rows
	if len(t.Footer) > 0 {
		rows = append(rows[:len(rows):len(rows)], t.Footer)
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case len(t.Footer) > 0 && row == len(rows)-1:
				if t.numeric(col) {
					return numberStyle.Bold(true)
				}
				return totalStyle.Padding(0, 1)
			case t.numeric(col):
				return numberStyle
			}
			return cellStyle
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.String())
	if len(t.Rows) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("No records found."))
	}
	return b.String()
}

// Node is one entry of a rendered hierarchy.
type Node struct {
	Label    string
	Children []Node
}

// Tree renders nodes under a root label.
func Tree(root string, nodes []Node) string {
	t := tree.Root(titleStyle.Render(root))
	for _, n := range nodes {
		t.Child(subtree(n))
	}
	return t.String()
}

func subtree(n Node) any {
	if len(n.Children) == 0 {
		return n.Label
	}
	t := tree.Root(n.Label)
	for _, c := range n.Children {
		t.Child(subtree(c))
	}
	return t
}

// Card is a labelled figure on the dashboard.
type Card struct {
	Label string
	Value string
	Note  string
	Bad   bool
}

// Cards renders dashboard cards side by side.
func Cards(cards ...Card) string {
	boxes := make([]string, len(cards))
	for i, c := range cards {
		value := goodStyle.Render(c.Value)
		if c.Bad {
			value = badStyle.Render(c.Value)
		}
		body := mutedStyle.Render(c.Label) + "\n" + totalStyle.Render(value)
		if c.Note != "" {
			body += "\n" + mutedStyle.Render(c.Note)
		}
		boxes[i] = cardStyle.Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Heading renders a section heading.
func Heading(s string) string {
	return titleStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
