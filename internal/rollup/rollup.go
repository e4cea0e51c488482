// Package rollup aggregates flat, parent-referencing records into
// per-root totals.
//
// A record whose parent is absent from the input is treated as a root.
// A root with children displays the sum of its direct children's own
// values; a leaf displays its own value.
package rollup

import "github.com/shopspring/decimal"

// Accessors tell the tree how to read a record.
type Accessors[T any] struct {
	ID     func(T) string
	Parent func(T) string // "" for top-level records
	Value  func(T) decimal.Decimal
}

// Tree indexes records by parent.
type Tree[T any] struct {
	acc      Accessors[T]
	roots    []T
	children map[string][]T
}

// Row is a root with its displayed value and direct children.
type Row[T any] struct {
	Item     T
	Value    decimal.Decimal
	Children []T
}

// New builds a tree over items, preserving input order for roots and children.
func New[T any](items []T, acc Accessors[T]) *Tree[T] {
	present := make(map[string]bool, len(items))
	for _, it := range items {
		present[acc.ID(it)] = true
	}

	t := &Tree[T]{acc: acc, children: make(map[string][]T)}
	for _, it := range items {
		p := acc.Parent(it)
		if p != "" && p != acc.ID(it) && present[p] {
			t.children[p] = append(t.children[p], it)
			continue
		}
		t.roots = append(t.roots, it)
	}
	return t
}

// Roots returns the top-level records.
func (t *Tree[T]) Roots() []T {
	return t.roots
}

// Children returns the direct children of id.
func (t *Tree[T]) Children(id string) []T {
	return t.children[id]
}

// HasChildren reports whether id has at least one child.
func (t *Tree[T]) HasChildren(id string) bool {
	return len(t.children[id]) > 0
}

// Display returns the value shown for item.
func (t *Tree[T]) Display(item T) decimal.Decimal {
	kids := t.children[t.acc.ID(item)]
	if len(kids) == 0 {
		return t.acc.Value(item)
	}
	sum := decimal.Zero
	for _, c := range kids {
		sum = sum.Add(t.acc.Value(c))
	}
	return sum
}

// Rows returns every root with its displayed value.
func (t *Tree[T]) Rows() []Row[T] {
	rows := make([]Row[T], 0, len(t.roots))
	for _, r := range t.roots {
		rows = append(rows, Row[T]{
			Item:     r,
			Value:    t.Display(r),
			Children: t.children[t.acc.ID(r)],
		})
	}
	return rows
}

// Total sums the displayed values of all roots.
func (t *Tree[T]) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range t.roots {
		sum = sum.Add(t.Display(r))
	}
	return sum
}

// Group is the rollup of the records sharing one key.
type Group[K comparable, T any] struct {
	Key   K
	Tree  *Tree[T]
	Total decimal.Decimal
}

// GroupBy partitions items by key, visiting keys in order, and rolls up each
// partition independently. Keys with no records are skipped, as are records
// whose key is not listed in order.
func GroupBy[K comparable, T any](items []T, key func(T) K, order []K, acc Accessors[T]) []Group[K, T] {
	parts := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		parts[k] = append(parts[k], it)
	}

	var groups []Group[K, T]
	for _, k := range order {
		part := parts[k]
		if len(part) == 0 {
			continue
		}
		tree := New(part, acc)
		groups = append(groups, Group[K, T]{Key: k, Tree: tree, Total: tree.Total()})
	}
	return groups
}

// WithAncestors returns the records matching keep plus every ancestor of a
// match, in input order.
func WithAncestors[T any](items []T, acc Accessors[T], keep func(T) bool) []T {
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[acc.ID(it)] = it
	}

	required := make(map[string]bool)
	for _, it := range items {
		if !keep(it) {
			continue
		}
		cur, ok := it, true
		for ok {
			id := acc.ID(cur)
			if required[id] {
				break
			}
			required[id] = true
			cur, ok = byID[acc.Parent(cur)]
		}
	}

	var out []T
	for _, it := range items {
		if required[acc.ID(it)] {
			out = append(out, it)
		}
	}
	return out
}
