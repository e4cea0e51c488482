package query

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownSortKey is returned when a sort key is not registered for a view.
var ErrUnknownSortKey = errors.New("unknown sort key")

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is the current sort state of a view. A zero Order leaves items in
// input order.
type Order struct {
	Key       string
	Direction Direction
}

// Toggle returns the order after the user picks key: the same key flips
// direction, a new key sorts ascending.
func (o Order) Toggle(key string) Order {
	if o.Key == key && o.Direction == Asc {
		return Order{Key: key, Direction: Desc}
	}
	if o.Key == key && o.Direction == Desc {
		return Order{Key: key, Direction: Asc}
	}
	return Order{Key: key, Direction: Asc}
}

// Keys maps sort key names to field accessors.
type Keys[T any] map[string]func(T) any

// Names returns the registered key names, sorted.
func (k Keys[T]) Names() []string {
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Apply returns a sorted copy of items. Equal elements keep their input order.
func Apply[T any](items []T, o Order, keys Keys[T]) ([]T, error) {
	out := slices.Clone(items)
	if o.Key == "" {
		return out, nil
	}
	get, ok := keys[o.Key]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownSortKey, o.Key, strings.Join(keys.Names(), ", "))
	}

	desc := o.Direction == Desc
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(get(a), get(b))
		if desc {
			return -c
		}
		return c
	})
	return out, nil
}

// Compare orders two field values: strings lexically, numbers numerically,
// decimals by value, times chronologically and false before true. Values of
// different kinds compare by their printed form.
func Compare(a, b any) int {
	switch x := a.(type) {
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.Bool:
			return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
