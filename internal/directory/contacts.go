package directory

import (
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// ContactSortKeys are the sortable contact columns.
var ContactSortKeys = query.Keys[model.Contact]{
	"name":            func(c model.Contact) any { return c.Name },
	"type":            func(c model.Contact) any { return c.Type },
	"lastContactDate": func(c model.Contact) any { return c.LastContactDate },
}

// DefaultContactOrder lists the most recently contacted first.
var DefaultContactOrder = query.Order{Key: "lastContactDate", Direction: query.Desc}

// SearchContacts keeps contacts whose name, e-mail or company contains term.
func SearchContacts(contacts []model.Contact, term string) []model.Contact {
	return query.Search(contacts, term, func(c model.Contact) []string {
		return []string{c.Name, c.Email, c.Company}
	})
}

// CountLeads returns how many contacts are leads.
func CountLeads(contacts []model.Contact) int {
	n := 0
	for _, c := range contacts {
		if c.Type == model.ContactLead {
			n++
		}
	}
	return n
}
