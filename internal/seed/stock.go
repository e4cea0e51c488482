package seed

import "github.com/shopbook-dev/shopbook/internal/model"

// Products returns the product catalog.
func Products() []model.Product {
	return []model.Product{
		{
			ID: "IP15P-256-BLK-US-NEW", ProductNo: "PR-000001", Name: "Apple iPhone 15 Pro 256GB Black US NEW",
			Brand: "Apple", Model: "iPhone 15 Pro", Category: model.CategoryPhone,
			CostPrice: amt("999"), SellingPrice: amt("1199"), Stock: 25,
			Variations: model.Variations{RAM: "8GB", Storage: "256GB", Color: "Black", ModelCode: "A2848", Country: "US", Condition: "NEW", YearReleased: "2023"},
		},
		{
			ID: "GS23U-512-WHT-KO-NEW", ProductNo: "PR-000002", Name: "Samsung Galaxy S23 Ultra 512GB White KO NEW",
			Brand: "Samsung", Model: "Galaxy S23 Ultra", Category: model.CategoryPhone,
			CostPrice: amt("1099"), SellingPrice: amt("1299"), Stock: 15,
			Variations: model.Variations{RAM: "12GB", Storage: "512GB", Color: "White", Country: "KO", Condition: "NEW", YearReleased: "2023"},
		},
		{
			ID: "P8-128-GRY-US-NEW", ProductNo: "PR-000003", Name: "Google Pixel 8 128GB Gray US NEW",
			Brand: "Google", Model: "Pixel 8", Category: model.CategoryPhone,
			CostPrice: amt("650"), SellingPrice: amt("799"), Stock: 18,
			Variations: model.Variations{RAM: "8GB", Storage: "128GB", Color: "Gray", Country: "US", Condition: "NEW", YearReleased: "2023"},
		},
		{
			ID: "IP14PM-128-DPP-LL-NEW", ProductNo: "PR-000004", Name: "Apple iPhone 14 Pro Max 128GB Deep Purple LL NEW",
			Brand: "Apple", Model: "iPhone 14 Pro Max", Category: model.CategoryPhone,
			CostPrice: amt("1099"), SellingPrice: amt("1299"), Stock: 10,
			Variations: model.Variations{RAM: "6GB", Storage: "128GB", Color: "Deep Purple", Country: "LL", Condition: "NEW", YearReleased: "2022"},
		},
		{
			ID: "IP14PM-128-DPP-LL-USED", ProductNo: "PR-000005", Name: "Apple iPhone 14 Pro Max 128GB Deep Purple LL USED",
			Brand: "Apple", Model: "iPhone 14 Pro Max", Category: model.CategoryPhone,
			CostPrice: amt("950"), SellingPrice: amt("1099"), Stock: 15,
			Variations: model.Variations{RAM: "6GB", Storage: "128GB", Color: "Deep Purple", Country: "LL", Condition: "USED", YearReleased: "2022"},
		},
		{
			ID: "IP14PM-256-SBK-LL-NEW", ProductNo: "PR-000006", Name: "Apple iPhone 14 Pro Max 256GB Space Black LL NEW",
			Brand: "Apple", Model: "iPhone 14 Pro Max", Category: model.CategoryPhone,
			CostPrice: amt("1050"), SellingPrice: amt("1199"), Stock: 20,
			Variations: model.Variations{RAM: "6GB", Storage: "256GB", Color: "Space Black", Country: "LL", Condition: "NEW", YearReleased: "2022"},
		},
		{
			ID: "IP14P-128-SLV-LL-NEW", ProductNo: "PR-000007", Name: "Apple iPhone 14 Pro 128GB Silver LL NEW",
			Brand: "Apple", Model: "iPhone 14 Pro", Category: model.CategoryPhone,
			CostPrice: amt("850"), SellingPrice: amt("999"), Stock: 30,
			Variations: model.Variations{RAM: "6GB", Storage: "128GB", Color: "Silver", Country: "LL", Condition: "NEW", YearReleased: "2022"},
		},
		{
			ID: "IP14PL-128-MNT-LL-NEW", ProductNo: "PR-000008", Name: "Apple iPhone 14 Plus 128GB Midnight LL NEW",
			Brand: "Apple", Model: "iPhone 14 Plus", Category: model.CategoryPhone,
			CostPrice: amt("750"), SellingPrice: amt("899"), Stock: 22,
			Variations: model.Variations{RAM: "6GB", Storage: "128GB", Color: "Midnight", Country: "LL", Condition: "NEW", YearReleased: "2022"},
		},
		{
			ID: "IP14-128-STL-LL-NEW", ProductNo: "PR-000009", Name: "Apple iPhone 14 128GB Starlight LL NEW",
			Brand: "Apple", Model: "iPhone 14", Category: model.CategoryPhone,
			CostPrice: amt("650"), SellingPrice: amt("799"), Stock: 40,
			Variations: model.Variations{RAM: "6GB", Storage: "128GB", Color: "Starlight", Country: "LL", Condition: "NEW", YearReleased: "2022"},
		},
		{
			ID: "IPDPR1296-128-SGY-US-NEW", ProductNo: "PR-000010", Name: "Apple iPad Pro 12.9 6th Gen 128GB Space Gray US NEW",
			Brand: "Apple", Model: "iPad Pro 12.9 6th Gen", Category: model.CategoryTablet,
			CostPrice: amt("999"), SellingPrice: amt("1099"), Stock: 12,
			Variations: model.Variations{RAM: "8GB", Storage: "128GB", Color: "Space Gray", Country: "US", Condition: "NEW", Generation: "6th Gen", YearReleased: "2022"},
		},
		{
			ID: "ANK-PB-10K-BLK", ProductNo: "PR-000011", Name: "Anker Power Bank 10000mAh Black",
			Brand: "Anker", Model: "PowerCore 10000", Category: model.CategoryAccessory,
			CostPrice: amt("25"), SellingPrice: amt("49.99"), Stock: 80,
			Variations: model.Variations{Storage: "10000mAh", Color: "Black", Country: "N/A", Condition: "NEW"},
		},
		{
			ID: "SPG-TA-S23U", ProductNo: "PR-000012", Name: "Spigen Tough Armor Case for Galaxy S23 Ultra",
			Brand: "Spigen", Model: "Tough Armor", Category: model.CategoryAccessory,
			CostPrice: amt("10"), SellingPrice: amt("24.99"), Stock: 120,
			Variations: model.Variations{Storage: "N/A", Color: "Black", Country: "N/A", Condition: "NEW"},
		},
		{
			ID: "SMP-OLED-S22", ProductNo: "PR-000013", Name: "Samsung OLED Screen Replacement S22",
			Brand: "Samsung Parts", Model: "S22 Screen", Category: model.CategoryRepairPart,
			CostPrice: amt("150"), SellingPrice: amt("249.99"), Stock: 10,
			Variations: model.Variations{Storage: "N/A", Color: "N/A", Country: "N/A", Condition: "Parts Replace"},
		},
	}
}

func item(id, name, sku string, cat model.ProductCategory, qty int, loc, cost, sell string) model.InventoryItem {
	return model.InventoryItem{
		ID: id, ProductName: name, SKU: sku, Category: cat, Quantity: qty,
		Location: loc, CostPrice: amt(cost), SellingPrice: amt(sell),
	}
}

// Inventory returns the stock lines per location.
func Inventory() []model.InventoryItem {
	return []model.InventoryItem{
		item("INV001", "iPhone 15 Pro", "IP15P-256-BLK", model.CategoryPhone, 25, "Main Store", "999", "1199"),
		item("INV002", "Galaxy S23 Ultra", "GS23U-512-WHT", model.CategoryPhone, 15, "Main Store", "1099", "1299"),
		item("INV003", "USB-C Cable", "UBC-1M-GEN", model.CategoryAccessory, 150, "Warehouse", "5", "19.99"),
		item("INV004", "Screen Protector IP15", "SP-IP15", model.CategoryAccessory, 200, "Main Store", "2.5", "14.99"),
		item("INV005", "iPhone 14 Battery", "BAT-IP14", model.CategoryRepairPart, 45, "Repair Center", "25", "69.99"),
		item("INV006", "Pixel 8", "P8-128-GRY", model.CategoryPhone, 18, "Main Store", "650", "799"),
		item("INV007", "Apple iPhone 14 Pro Max 128GB LL Deep Purple - NEW", "IP14PM-3LLDPP-0", model.CategoryPhone, 10, "Main Store", "1099", "1299"),
		item("INV008", "iPhone 14 Pro Max 128GB Deep Purple", "IP14PM-3LLDPP-0", model.CategoryPhone, 15, "Main Store", "950", "1099"),
		item("INV009", "iPhone 14 Pro Max 256GB Space Black", "IP14PM-4LLSBK-0", model.CategoryPhone, 20, "Warehouse A", "1050", "1199"),
		item("INV010", "iPhone 14 Pro 128GB Silver", "IP14PR-3LLSLV-0", model.CategoryPhone, 30, "Main Store", "850", "999"),
		item("INV011", "iPhone 14 Plus 128GB Midnight", "IP14PL-3LLMNT-0", model.CategoryPhone, 22, "Main Store", "750", "899"),
		item("INV012", "iPhone 14 128GB Starlight", "IP14-3LLSTL-0", model.CategoryPhone, 40, "Warehouse A", "650", "799"),
		item("INV013", "iPad Pro 12.9 6th Gen 128GB Space Gray", "IPDPR1296-3LLSGY-0", model.CategoryTablet, 12, "Main Store", "999", "1099"),
		item("INV014", "iPad Pro 11 4th Gen 128GB Silver", "IPDPR114-3LLSLV-0", model.CategoryTablet, 18, "Main Store", "720", "799"),
	}
}

// Branches returns the shop locations.
func Branches() []model.Branch {
	return []model.Branch{
		{ID: "B001", Name: "Main Store", Address: "123 Market St, Downtown", Phone: "555-1234", Manager: "Alice Johnson"},
		{ID: "B002", Name: "Warehouse A", Address: "456 Industrial Ave, South End", Phone: "555-5678", Manager: "Bob Williams"},
		{ID: "B003", Name: "Repair Center", Address: "789 Tech Rd, North Park", Phone: "555-9012", Manager: "Charlie Brown"},
		{ID: "B004", Name: "Uptown Kiosk", Address: "101 Uptown Plaza", Phone: "555-3456", Manager: "Diana Prince"},
	}
}

// Transfers returns the stock transfers between branches.
func Transfers() []model.StockTransfer {
	return []model.StockTransfer{
		{ID: "ST001", Date: day(2023, 10, 25), FromBranch: "Warehouse A", ToBranch: "Main Store", ProductName: "iPhone 15 Pro", Quantity: 10, Status: model.TransferCompleted},
		{ID: "ST002", Date: day(2023, 10, 24), FromBranch: "Warehouse A", ToBranch: "Repair Center", ProductName: "iPhone 14 Battery", Quantity: 20, Status: model.TransferCompleted},
		{ID: "ST003", Date: day(2023, 10, 26), FromBranch: "Main Store", ToBranch: "Uptown Kiosk", ProductName: "Spigen Tough Armor Case", Quantity: 50, Status: model.TransferInTransit},
		{ID: "ST004", Date: day(2023, 10, 22), FromBranch: "Main Store", ToBranch: "Repair Center", ProductName: "OLED Screen Replacement S22", Quantity: 5, Status: model.TransferCancelled},
	}
}

// Variations returns the variation attribute catalog.
func Variations() []model.VariationAttribute {
	return []model.VariationAttribute{
		{ID: "ram", Name: "RAM", Values: []string{"4GB", "6GB", "8GB", "12GB", "16GB", "18GB", "24GB", "32GB", "64GB", "128GB"}},
		{ID: "storage", Name: "Storage", Values: []string{"16GB", "32GB", "64GB", "128GB", "256GB", "512GB", "1TB", "2TB", "3TB", "4TB", "8TB", "10000mAh", "20000mAh", "30000mAh", "N/A"}},
		{ID: "color", Name: "Color", Values: []string{
			"Alpine Green", "BMW M Edition", "Black", "Black Titanium", "Blue",
			"Blue Titanium", "Bora Purple", "Burgundy", "Cloud White", "Cosmic Organge",
			"Cream", "Deep Blue", "Deep Purple", "Desert Titanium", "Gold", "Graphite",
			"Gray", "Green", "Jet Black", "Lavender", "Light Gold", "Lime", "Matte Gold",
			"Matte Midnight Green", "Matte Silver", "Matte Space Gray", "Midnight",
			"Mist Blue", "N/A", "Natural Titanium", "Navy", "Olive", "Pacific Blue",
			"Phantom Black", "Phantom Brown", "Phantom Navy", "Phantom Silver",
			"Phantom Titanium", "Pink", "Pink Gold", "Purple", "Red", "Rose Gold", "Sage",
			"Sierra Blue", "Silver", "Sky Blue", "Space Black", "Space Gray", "Starlight",
			"Teal", "Ulramarine", "Violet", "White", "White Titanium", "Yellow",
		}},
		{ID: "generation", Name: "Generation", Values: []string{"1st Gen", "2nd Gen", "3rd Gen", "4th Gen", "5th Gen", "6th Gen", "7th Gen", "8th Gen", "9th Gen", "10th Gen", "11th Gen", "12th Gen"}},
		{ID: "model_code", Name: "Model Code", Values: []string{}},
		{ID: "year_released", Name: "Year Released", Values: []string{"2025", "2024", "2023", "2022", "2021", "2020", "2019", "2018", "2017", "2016", "2015"}},
		{ID: "country", Name: "Country", Values: []string{"B", "B/DS", "BA", "CA", "CH", "E", "E/DS", "G", "JA", "JP", "KH", "KO", "LL", "N", "N/A", "U", "U1", "US", "W", "XA", "ZA", "ZP"}},
		{ID: "condition", Name: "Condition", Values: []string{"NEW", "NEW N/A", "NEW ACT", "NEW NoBox", "USED", "UnknownPart", "ApplePart", "Activated", "PartReplace", "Others"}},
	}
}
