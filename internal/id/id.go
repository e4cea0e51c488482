// Package id numbers records with a fixed prefix and a zero-padded sequence,
// e.g. "S007" or "PR-000013".
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns prefix followed by seq padded to width digits.
func Format(prefix string, width, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// Parse returns the sequence number of an ID with the given prefix.
func Parse(prefix, id string) (int, error) {
	digits, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, fmt.Errorf("invalid ID %q: missing prefix %q", id, prefix)
	}
	if digits == "" {
		return 0, fmt.Errorf("invalid ID %q: missing sequence", id)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid sequence in ID %q", id)
	}
	return seq, nil
}

// Next returns the ID after the highest sequence among existing. IDs that do
// not carry the prefix are ignored; the first ID is sequence 1.
func Next(prefix string, width int, existing []string) string {
	highest := 0
	for _, e := range existing {
		seq, err := Parse(prefix, e)
		if err != nil {
			continue
		}
		highest = max(highest, seq)
	}
	return Format(prefix, width, highest+1)
}
