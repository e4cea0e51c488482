package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopbook-dev/shopbook/internal/inventory"
	"github.com/shopbook-dev/shopbook/internal/model"
	"github.com/shopbook-dev/shopbook/internal/query"
	"github.com/shopbook-dev/shopbook/internal/render"
)

// inventoryView lists stock lines, marking those below threshold.
func inventoryView(title string, items []model.InventoryItem, threshold int) view {
	v := view{
		title:   title,
		headers: []string{"ID", "Product", "SKU", "Category", "Qty", "Location", "Cost", "Price", "Alert"},
		numeric: []int{4, 6, 7},
	}
	for _, i := range items {
		alert := ""
		if inventory.IsLow(i, threshold) {
			alert = "low"
		}
		v.rows = append(v.rows, []any{i.ID, i.ProductName, i.SKU, string(i.Category), i.Quantity, i.Location, i.CostPrice, i.SellingPrice, alert})
	}
	return v
}

func newInventoryCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List stock lines by location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			items, err := query.Apply(inventory.Search(b.Inventory, f.search), f.order(cmd, query.Order{}), inventory.ItemSortKeys)
			if err != nil {
				return err
			}
			threshold := a.cfg.Inventory.LowStockThreshold
			v := inventoryView("Inventory", items, threshold)
			if err := v.emit(cmd, a.money(), f.export); err != nil {
				return err
			}
			if f.export == "" {
				low := inventory.LowStock(items, threshold)
				fmt.Fprintf(cmd.OutOrStdout(), "%d items, %d below %d units\n", len(items), len(low), threshold)
			}
			return nil
		},
	}
	f.register(cmd, true, "", inventory.ItemSortKeys.Names())
	return cmd
}

func newLowStockCommand(a *app) *cobra.Command {
	var (
		f         listFlags
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List stock lines below the reorder threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Inventory.LowStockThreshold
			}
			if threshold < 0 {
				return fmt.Errorf("invalid --threshold %d: must not be negative", threshold)
			}
			b, err := a.book()
			if err != nil {
				return err
			}
			low := inventory.LowStock(b.Inventory, threshold)
			return inventoryView(fmt.Sprintf("Low stock (below %d)", threshold), low, threshold).emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, false, "", nil)
	cmd.Flags().IntVar(&threshold, "threshold", inventory.DefaultLowStockThreshold, "quantity below which an item is low (default from config)")
	return cmd
}

func newProductsCommand(a *app) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "products [sku|product-no]",
		Short: "List the product catalog, or show one product with its variations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			m := a.money()
			if len(args) == 1 {
				p, ok := inventory.FindProduct(b.Products, args[0])
				if !ok {
					return fmt.Errorf("product %q not found", args[0])
				}
				return showProduct(cmd, m, p, f.export)
			}

			list, err := query.Apply(inventory.SearchProducts(b.Products, f.search), f.order(cmd, query.Order{}), inventory.ProductSortKeys)
			if err != nil {
				return err
			}
			v := view{
				title:   "Products",
				headers: []string{"No", "SKU", "Name", "Brand", "Category", "Cost", "Price", "Stock", "Level"},
				numeric: []int{5, 6, 7},
			}
			for _, p := range list {
				v.rows = append(v.rows, []any{p.ProductNo, p.ID, p.Name, p.Brand, string(p.Category), p.CostPrice, p.SellingPrice, p.Stock, inventory.StockLevel(p.Stock)})
			}
			return v.emit(cmd, m, f.export)
		},
	}
	f.register(cmd, true, "", inventory.ProductSortKeys.Names())
	return cmd
}

func showProduct(cmd *cobra.Command, m render.Money, p model.Product, exportPath string) error {
	v := view{
		title:   fmt.Sprintf("%s  %s", p.ProductNo, p.Name),
		headers: []string{"Field", "Value"},
		rows: [][]any{
			{"SKU", p.ID},
			{"Brand", p.Brand},
			{"Model", p.Model},
			{"Category", string(p.Category)},
			{"Cost", p.CostPrice},
			{"Price", p.SellingPrice},
			{"Stock", fmt.Sprintf("%d (%s)", p.Stock, inventory.StockLevel(p.Stock))},
		},
	}
	vr := p.Variations
	for _, kv := range [][2]string{
		{"RAM", vr.RAM},
		{"Storage", vr.Storage},
		{"Color", vr.Color},
		{"Generation", vr.Generation},
		{"Model code", vr.ModelCode},
		{"Year released", vr.YearReleased},
		{"Country", vr.Country},
		{"Condition", vr.Condition},
		{"Others", vr.Others},
	} {
		if kv[1] != "" {
			v.rows = append(v.rows, []any{kv[0], kv[1]})
		}
	}
	return v.emit(cmd, m, exportPath)
}

func newVariationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variations [attribute]",
		Short: "List variation attributes and their values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			attrs := b.Variations.All()
			if len(args) == 1 {
				attr, ok := b.Variations.Get(args[0])
				if !ok {
					return fmt.Errorf("variation attribute %q not found", args[0])
				}
				attrs = []model.VariationAttribute{attr}
			}
			nodes := make([]render.Node, 0, len(attrs))
			for _, attr := range attrs {
				n := render.Node{Label: fmt.Sprintf("%s (%s)", attr.Name, attr.ID)}
				for _, val := range attr.Values {
					n.Children = append(n.Children, render.Node{Label: val})
				}
				nodes = append(nodes, n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Tree("Variations", nodes))
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <attribute> <value>",
		Short: "Add a value to a variation attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			added, err := b.AddVariationValue(args[0], args[1])
			if err != nil {
				return err
			}
			value := strings.TrimSpace(args[1])
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is blank or already listed under %s\n", value, args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", value, args[0])
			return nil
		},
	})
	return cmd
}

func newTransfersCommand(a *app) *cobra.Command {
	var (
		f         listFlags
		inTransit bool
	)
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "List stock transfers between branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.book()
			if err != nil {
				return err
			}
			list := b.Transfers.All()
			if inTransit {
				list = b.Transfers.InTransit()
			}
			v := view{
				title:   "Stock Transfers",
				headers: []string{"ID", "Date", "From", "To", "Product", "Qty", "Status"},
				numeric: []int{5},
			}
			for _, t := range list {
				v.rows = append(v.rows, []any{t.ID, t.Date, t.FromBranch, t.ToBranch, t.ProductName, t.Quantity, string(t.Status)})
			}
			return v.emit(cmd, a.money(), f.export)
		},
	}
	f.register(cmd, false, "", nil)
	cmd.Flags().BoolVar(&inTransit, "in-transit", false, "show only transfers still on the way")
	return cmd
}
