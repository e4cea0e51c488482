package directory

import (
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
)

// StaffSortKeys are the sortable staff columns.
var StaffSortKeys = query.Keys[model.User]{
	"name":   func(u model.User) any { return u.Name },
	"role":   func(u model.User) any { return u.Role },
	"status": func(u model.User) any { return u.Status },
}

// DefaultStaffOrder lists staff alphabetically.
var DefaultStaffOrder = query.Order{Key: "name", Direction: query.Asc}

// SearchStaff keeps users whose name or e-mail contains term.
func SearchStaff(users []model.User, term string) []model.User {
	return query.Search(users, term, func(u model.User) []string {
		return []string{u.Name, u.Email}
	})
}

// CountActive returns how many users are active.
func CountActive(users []model.User) int {
	n := 0
	for _, u := range users {
		if u.Status == model.UserActive {
			n++
		}
	}
	return n
}

// Branches resolves branch IDs to names.
type Branches struct {
	list  []model.Branch
	names map[string]string
}

// NewBranches indexes branches by ID.
func NewBranches(list []model.Branch) *Branches {
	names := make(map[string]string, len(list))
	for _, b := range list {
		names[b.ID] = b.Name
	}
	return &Branches{list: list, names: names}
}

// Add appends a branch. The caller validates it first.
func (b *Branches) Add(br model.Branch) {
	b.list = append(b.list, br)
	b.names[br.ID] = br.Name
}

// All returns the branches.
func (b *Branches) All() []model.Branch {
	return b.list
}

// Name returns the branch name for id, or "N/A" when unknown.
func (b *Branches) Name(id string) string {
	if n, ok := b.names[id]; ok {
		return n
	}
	return "N/A"
}

// Exists reports whether id or name refers to a branch.
func (b *Branches) Exists(ref string) bool {
	for _, br := range b.list {
		if br.ID == ref || br.Name == ref {
			return true
		}
	}
	return false
}
