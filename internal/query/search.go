// Package query implements the filter, search and sort steps shared by
// every list view.
package query

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Contains reports whether any field contains term, ignoring case.
// An empty term matches everything.
func Contains(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Search keeps the items where any of the fields returned by fields contains
// term. An empty term returns items unchanged.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	return Filter(items, func(it T) bool {
		return Contains(term, fields(it)...)
	})
}

// SearchAll is Search over every stringified field value of each item,
// nested structs and slices included.
func SearchAll[T any](items []T, term string) []T {
	return Search(items, term, func(it T) []string {
		return Values(it)
	})
}

// Values flattens v into the string form of each of its leaf values.
// Decimals and other fmt.Stringer values use String; times use the
// calendar-day layout. Unexported struct fields are skipped.
func Values(v any) []string {
	var out []string
	collect(reflect.ValueOf(v), &out)
	return out
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
)

func collect(v reflect.Value, out *[]string) {
	if !v.IsValid() {
		return
	}
	if v.Type() == timeType {
		if t := v.Interface().(time.Time); !t.IsZero() {
			*out = append(*out, t.Format(dateLayout))
		}
		return
	}
	if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface && v.Type().Implements(stringerType) {
		*out = append(*out, v.Interface().(fmt.Stringer).String())
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			collect(v.Elem(), out)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			collect(v.Field(i), out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			collect(v.Index(i), out)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			collect(iter.Value(), out)
		}
	case reflect.String:
		*out = append(*out, v.String())
	case reflect.Bool:
		*out = append(*out, strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*out = append(*out, strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*out = append(*out, strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		*out = append(*out, strconv.FormatFloat(v.Float(), 'f', -1, 64))
	}
}
