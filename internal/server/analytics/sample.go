package analytics

func sampleKPIs() Row {
	return Row{
		"jami_buyurtmalar":           830,
		"faol_mijozlar":              89,
		"jami_daromad":               money(1265793.04),
		"jami_yuk_xarajati":          money(64942.69),
		"ortacha_buyurtma_qiymati":   money(1525.05),
		"jami_mahsulotlar":           77,
		"toxtatilgan_mahsulotlar":    8,
		"kategoriyalar_soni":         8,
		"yetkazib_beruvchilar_soni":  29,
		"ortacha_buyurtma_per_xodim": 92.2,
		"ortacha_yetkazish_kunlari":  8.49,
		"vaqtida_yetkazish_foizi":    95.42,
		"oxirgi_oy_daromadi":         money(16325.15),
	}
}

func sampleProducts() []Product {
	return []Product{
		{ID: 38, Name: "Côte de Blaye", Category: "Beverages", Supplier: "Aux joyeux ecclésiastiques", QuantitySold: 623, Revenue: 141396.74, Orders: 24},
		{ID: 29, Name: "Thüringer Rostbratwurst", Category: "Meat/Poultry", Supplier: "Plutzer Lebensmittelgroßmärkte AG", QuantitySold: 746, Revenue: 80368.67, Orders: 32},
		{ID: 59, Name: "Raclette Courdavault", Category: "Dairy Products", Supplier: "Gai pâturage", QuantitySold: 1496, Revenue: 71155.70, Orders: 54},
		{ID: 62, Name: "Tarte au sucre", Category: "Confections", Supplier: "Forêts d'érables", QuantitySold: 1083, Revenue: 47234.97, Orders: 48},
		{ID: 60, Name: "Camembert Pierrot", Category: "Dairy Products", Supplier: "Gai pâturage", QuantitySold: 1577, Revenue: 46825.48, Orders: 51},
		{ID: 56, Name: "Gnocchi di nonna Alice", Category: "Grains/Cereals", Supplier: "Pasta Buttini s.r.l.", QuantitySold: 1263, Revenue: 42593.06, Orders: 50},
		{ID: 51, Name: "Manjimup Dried Apples", Category: "Produce", Supplier: "G'day, Mate", QuantitySold: 886, Revenue: 41819.65, Orders: 39},
		{ID: 17, Name: "Alice Mutton", Category: "Meat/Poultry", Supplier: "Pavlova, Ltd.", QuantitySold: 978, Revenue: 32698.38, Orders: 37},
		{ID: 18, Name: "Carnarvon Tigers", Category: "Seafood", Supplier: "Pavlova, Ltd.", QuantitySold: 539, Revenue: 29171.88, Orders: 27},
		{ID: 28, Name: "Rössle Sauerkraut", Category: "Produce", Supplier: "Plutzer Lebensmittelgroßmärkte AG", QuantitySold: 640, Revenue: 25696.64, Orders: 33},
		{ID: 43, Name: "Ipoh Coffee", Category: "Beverages", Supplier: "Leka Trading", QuantitySold: 580, Revenue: 23526.70, Orders: 28},
		{ID: 7, Name: "Uncle Bob's Organic Dried Pears", Category: "Produce", Supplier: "Grandma Kelly's Homestead", QuantitySold: 763, Revenue: 22044.30, Orders: 29},
	}
}
