package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// Catalog holds the variation attributes and their allowed values.
type Catalog struct {
	attrs []model.VariationAttribute
}

// NewCatalog copies attrs into a Catalog.
func NewCatalog(attrs []model.VariationAttribute) *Catalog {
	c := &Catalog{attrs: make([]model.VariationAttribute, len(attrs))}
	for i, a := range attrs {
		a.Values = slices.Clone(a.Values)
		c.attrs[i] = a
	}
	return c
}

// All returns the attributes in catalog order.
func (c *Catalog) All() []model.VariationAttribute {
	return c.attrs
}

// Get returns the attribute with the given ID.
func (c *Catalog) Get(id string) (model.VariationAttribute, bool) {
	for _, a := range c.attrs {
		if a.ID == id {
			return a, true
		}
	}
	return model.VariationAttribute{}, false
}

// AddValue adds value to an attribute and re-sorts its values. Blank values
// and values already present are ignored and reported as not added.
func (c *Catalog) AddValue(id, value string) (bool, error) {
	value = strings.TrimSpace(value)
	for i := range c.attrs {
		if c.attrs[i].ID != id {
			continue
		}
		if value == "" || slices.Contains(c.attrs[i].Values, value) {
			return false, nil
		}
		c.attrs[i].Values = append(c.attrs[i].Values, value)
		slices.Sort(c.attrs[i].Values)
		return true, nil
	}
	return false, fmt.Errorf("unknown variation attribute %q", id)
}
