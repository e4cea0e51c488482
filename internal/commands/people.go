package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/directory"
	"github.com/shopbook-dev/shopbook/internal/query"
)

func newSuppliersCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "List suppliers and what the shop has spent with them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			list, err := query.Apply(directory.SearchSuppliers(b.Suppliers, f.search), f.order(cmd, directory.DefaultSupplierOrder), directory.SupplierSortKeys)
			if err != nil {
				return err
			}
			v := view{
				title:   "Suppliers",
				headers: []string{"ID", "Name", "Contact", "Email", "Phone", "Category", "Total Spent"},
				numeric: []int{6},
				footer:  []any{"Total", "", "", "", "", "", directory.TotalSpent(list)},
			}
			for _, s := range list {
				v.rows = append(v.rows, []any{s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, string(s.Category), s.TotalSpent})
			}
			return v.emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, true, directory.DefaultSupplierOrder.Key, directory.SupplierSortKeys.Names())
	return cmd
}

func newContactsCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List customers and leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			list, err := query.Apply(directory.SearchContacts(b.Contacts, f.search), f.order(cmd, directory.DefaultContactOrder), directory.ContactSortKeys)
			if err != nil {
				return err
			}
			v := view{
				title:   "Contacts",
				headers: []string{"ID", "Name", "Type", "Email", "Phone", "Company", "Last Contact"},
			}
			for _, c := range list {
				v.rows = append(v.rows, []any{c.ID, c.Name, string(c.Type), c.Email, c.Phone, c.Company, c.LastContactDate})
			}
			if err := v.emit(cmd, a.money(), f.export); err != nil {
				return err
			}
			if f.export == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d contacts, %d leads\n", len(list), directory.CountLeads(list))
			}
			return nil
		},
	}
	f.register(cmd, true, directory.DefaultContactOrder.Key, directory.ContactSortKeys.Names())
	return cmd
}

func newStaffCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List user accounts and their branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			list, err := query.Apply(directory.SearchStaff(b.Staff, f.search), f.order(cmd, directory.DefaultStaffOrder), directory.StaffSortKeys)
			if err != nil {
				return err
			}
			v := view{
				title:   "Staff",
				headers: []string{"ID", "Name", "Email", "Role", "Status", "Branch"},
			}
			for _, u := range list {
				v.rows = append(v.rows, []any{u.ID, u.Name, u.Email, string(u.Role), string(u.Status), b.Branches.Name(u.BranchID)})
			}
			if err := v.emit(cmd, a.money(), f.export); err != nil {
				return err
			}
			if f.export == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d users, %d active\n", len(list), directory.CountActive(list))
			}
			return nil
		},
	}
	f.register(cmd, true, directory.DefaultStaffOrder.Key, directory.StaffSortKeys.Names())
	return cmd
}

func newBranchesCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List shop locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			v := view{
				title:   "Branches",
				headers: []string{"ID", "Name", "Address", "Phone", "Manager"},
			}
			for _, br := range query.SearchAll(b.Branches.All(), f.search) {
				v.rows = append(v.rows, []any{br.ID, br.Name, br.Address, br.Phone, br.Manager})
			}
			return v.emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, true, "", nil)
	return cmd
}
