package seed

import "github.com/shopbook-dev/shopbook/internal/model"

// Sales returns the sales book.
func Sales() []model.Sale {
	return []model.Sale{
		{ID: "S001", Date: day(2023, 10, 26), Customer: "John Doe", Total: amt("899.99"), PaymentStatus: model.PaymentPaid, Items: 1},
		{ID: "S002", Date: day(2023, 10, 26), Customer: "Jane Smith", Total: amt("45.50"), PaymentStatus: model.PaymentPaid, Items: 2},
		{ID: "S003", Date: day(2023, 10, 25), Customer: "Peter Jones", Total: amt("150.00"), PaymentStatus: model.PaymentPending, Items: 1},
		{ID: "S004", Date: day(2023, 10, 25), Customer: "Mary Brown", Total: amt("29.99"), PaymentStatus: model.PaymentPaid, Items: 1},
		{ID: "S005", Date: day(2023, 10, 24), Customer: "David Williams", Total: amt("1200.00"), PaymentStatus: model.PaymentPaid, Items: 2},
		{ID: "S006", Date: day(2023, 10, 23), Customer: "Emily Clark", Total: amt("75.00"), PaymentStatus: model.PaymentOverdue, Items: 1},
		{ID: "S007", Date: day(2023, 10, 22), Customer: "Michael Scott", Total: amt("99.98"), PaymentStatus: model.PaymentPaid, Items: 2},
	}
}

// Suppliers returns the supplier directory, including the general seller.
func Suppliers() []model.Supplier {
	return []model.Supplier{
		{ID: "SUP001", Name: "Apple Inc.", ContactPerson: "Tim Cook", Email: "sales@apple.com", Phone: "800-275-2273", Category: model.SupplierElectronics, TotalSpent: amt("9990")},
		{ID: "SUP002", Name: "Samsung Electronics", ContactPerson: "Jane Lee", Email: "orders@samsung.com", Phone: "800-726-7864", Category: model.SupplierElectronics, TotalSpent: amt("5495")},
		{ID: "SUP003", Name: "Anker Innovations", ContactPerson: "Steven Yang", Email: "support@anker.com", Phone: "800-988-7973", Category: model.SupplierAccessories, TotalSpent: amt("5050")},
		{ID: "SUP004", Name: "Spigen Co., Ltd.", ContactPerson: "Dae-Young Kim", Email: "contact@spigen.com", Phone: "949-502-5121", Category: model.SupplierAccessories, TotalSpent: amt("2000")},
		{ID: "SUP005", Name: "Google LLC", ContactPerson: "Sundar Pichai", Email: "procurement@google.com", Phone: "650-253-0000", Category: model.SupplierElectronics, TotalSpent: amt("6500")},
		{ID: "SUP006", Name: "Samsung Parts", ContactPerson: "John Parts", Email: "parts@samsung.com", Phone: "800-627-4368", Category: model.SupplierParts, TotalSpent: amt("2250")},
		{ID: model.GeneralSellerID, Name: "General Seller", ContactPerson: "N/A", Email: "n/a", Phone: "n/a", Category: model.SupplierOthers, TotalSpent: amt("0")},
	}
}

func line(productID, name string, qty int, price string) model.PurchaseLineItem {
	return model.PurchaseLineItem{ProductID: productID, ProductName: name, Unit: "pcs", Quantity: qty, Price: amt(price)}
}

// Purchases returns the supplier invoices.
func Purchases() []model.Purchase {
	return []model.Purchase{
		{
			ID: "P001", Date: day(2023, 10, 25), Supplier: "Apple Inc.", SupplierContact: "800-275-2273", InvoiceID: "INV-A123",
			LineItems: []model.PurchaseLineItem{line("IP15P-256-BLK-US-NEW", "Apple iPhone 15 Pro 256GB Black US NEW", 10, "999")},
			Total:     amt("9990"), Status: model.PurchasePaid,
		},
		{
			ID: "P002", Date: day(2023, 10, 24), Supplier: "Samsung Electronics", SupplierContact: "800-726-7864", InvoiceID: "INV-S456",
			LineItems: []model.PurchaseLineItem{line("GS23U-512-WHT-KO-NEW", "Samsung Galaxy S23 Ultra 512GB White KO NEW", 5, "1099")},
			Total:     amt("5495"), Status: model.PurchaseUnpaid,
		},
		{
			ID: "P003", Date: day(2023, 10, 22), Supplier: "Anker Innovations", SupplierContact: "800-988-7973", InvoiceID: "INV-K789",
			LineItems: []model.PurchaseLineItem{line("ANK-PB-10K-BLK", "Anker Power Bank 10000mAh Black", 100, "25")},
			Total:     amt("2500"), Status: model.PurchasePaid,
		},
		{
			ID: "P004", Date: day(2023, 9, 15), Supplier: "Spigen Co., Ltd.", SupplierContact: "949-502-5121", InvoiceID: "INV-G101",
			LineItems: []model.PurchaseLineItem{line("SPG-TA-S23U", "Spigen Tough Armor Case for Galaxy S23 Ultra", 200, "10")},
			Total:     amt("2000"), Status: model.PurchaseOverdue,
		},
		{
			ID: "P005", Date: day(2023, 10, 20), Supplier: "Google LLC", SupplierContact: "650-253-0000", InvoiceID: "INV-P212",
			LineItems: []model.PurchaseLineItem{line("P8-128-GRY-US-NEW", "Google Pixel 8 128GB Gray US NEW", 10, "650")},
			Total:     amt("6500"), Status: model.PurchaseUnpaid,
		},
		{
			ID: "P006", Date: day(2023, 10, 18), Supplier: "Samsung Parts", SupplierContact: "800-627-4368", InvoiceID: "INV-R313",
			LineItems: []model.PurchaseLineItem{line("SMP-OLED-S22", "Samsung OLED Screen Replacement S22", 15, "150")},
			Total:     amt("2250"), Status: model.PurchasePaid,
		},
		{
			ID: "P007", Date: day(2023, 10, 28), Supplier: "Anker Innovations", SupplierContact: "800-988-7973", InvoiceID: "INV-K991",
			LineItems: []model.PurchaseLineItem{
				line("ANK-PB-10K-BLK", "Anker Power Bank 10000mAh Black", 50, "25"),
				line("SPG-TA-S23U", "Spigen Tough Armor Case for Galaxy S23 Ultra", 50, "10"),
			},
			ShippingCost: amt("50"),
			OtherFees:    amt("25"),
			Total:        amt("1825"),
			Status:       model.PurchasePaid,
		},
	}
}
