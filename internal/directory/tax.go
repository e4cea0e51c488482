package directory

import "github.com/shopbook-dev/shopbook/internal/model"

// DefaultTaxRate returns the rate flagged as default, or the first rate when
// none is flagged.
func DefaultTaxRate(rates []model.TaxRate) (model.TaxRate, bool) {
	for _, r := range rates {
		if r.IsDefault {
			return r, true
		}
	}
	if len(rates) > 0 {
		return rates[0], true
	}
	return model.TaxRate{}, false
}

// SetDefault marks id as the only default rate. It reports whether id exists.
func SetDefault(rates []model.TaxRate, id string) bool {
	found := false
	for i := range rates {
		rates[i].IsDefault = rates[i].ID == id
		found = found || rates[i].IsDefault
	}
	return found
}
