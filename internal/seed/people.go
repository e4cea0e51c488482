package seed

import "github.com/shopbook-dev/shopbook/internal/model"

// Contacts returns customers and leads.
func Contacts() []model.Contact {
	return []model.Contact{
		{ID: "C001", Name: "John Doe", Type: model.ContactCustomer, Email: "john.d@example.com", Phone: "555-0101", Company: "JD Industries", LastContactDate: day(2023, 10, 26)},
		{ID: "C002", Name: "Jane Smith", Type: model.ContactCustomer, Email: "jane.s@example.com", Phone: "555-0102", LastContactDate: day(2023, 10, 26)},
		{ID: "C003", Name: "Peter Jones", Type: model.ContactCustomer, Email: "peter.j@example.com", Phone: "555-0103", Company: "Jones & Co.", LastContactDate: day(2023, 10, 25)},
		{ID: "C004", Name: "Emily Clark", Type: model.ContactCustomer, Email: "emily.c@example.com", Phone: "555-0104", LastContactDate: day(2023, 10, 23)},
		{ID: "C005", Name: "Tech Solutions Inc.", Type: model.ContactLead, Email: "contact@techsolutions.com", Phone: "555-0201", Company: "Tech Solutions Inc.", LastContactDate: day(2023, 10, 20)},
		{ID: "C006", Name: "Sarah Miller", Type: model.ContactLead, Email: "sarah.m@example.com", Phone: "555-0202", LastContactDate: day(2023, 10, 18)},
	}
}

// Staff returns the user accounts.
func Staff() []model.User {
	return []model.User{
		{ID: "USR001", Name: "Admin User", Email: "admin@phonestore.com", Role: model.RoleAdmin, Status: model.UserActive, BranchID: "B001"},
		{ID: "USR002", Name: "Alice Johnson", Email: "alice.j@phonestore.com", Role: model.RoleManager, Status: model.UserActive, BranchID: "B001"},
		{ID: "USR003", Name: "Bob Williams", Email: "bob.w@phonestore.com", Role: model.RoleManager, Status: model.UserInactive, BranchID: "B002"},
		{ID: "USR004", Name: "Charlie Brown", Email: "charlie.b@phonestore.com", Role: model.RoleTechnician, Status: model.UserActive, BranchID: "B003"},
		{ID: "USR005", Name: "Diana Prince", Email: "diana.p@phonestore.com", Role: model.RoleSalesStaff, Status: model.UserActive, BranchID: "B004"},
		{ID: "USR006", Name: "Edward Nygma", Email: "ed.n@phonestore.com", Role: model.RoleSalesStaff, Status: model.UserActive, BranchID: "B001"},
	}
}
