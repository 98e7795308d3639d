package models

import (
	"github.com/everbuy/internal/constants"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogProducts 内置商品目录（只读样例数据）
func CatalogProducts() []Product {
	return []Product{
		{ID: 1, Name: "Wireless Headphones", Price: MustMoney("199.99"), OriginalPrice: MoneyPtr("249.99"), Image: "/wireless-headphones.png", Rating: 4.5, Reviews: 128, Badge: constants.BadgeBestSeller, Category: "Audio", SortOrder: 1},
		{ID: 2, Name: "Smart Watch", Price: MustMoney("299.99"), OriginalPrice: MoneyPtr("399.99"), Image: "/smartwatch-lifestyle.png", Rating: 4.8, Reviews: 89, Badge: constants.BadgeNew, Category: "Electronics", SortOrder: 2},
		{ID: 3, Name: "Bluetooth Speaker", Price: MustMoney("79.99"), OriginalPrice: MoneyPtr("99.99"), Image: "/bluetooth-speaker.png", Rating: 4.3, Reviews: 156, Badge: constants.BadgeSale, Category: "Audio", SortOrder: 3},
		{ID: 4, Name: "Laptop Stand", Price: MustMoney("49.99"), Image: "/laptop-stand.png", Rating: 4.6, Reviews: 73, Category: "Accessories", SortOrder: 4},
		{ID: 5, Name: "USB-C Hub", Price: MustMoney("89.99"), OriginalPrice: MoneyPtr("119.99"), Image: "/usb-c-hub.jpg", Rating: 4.4, Reviews: 92, Badge: constants.BadgePopular, Category: "Computing", SortOrder: 5},
		{ID: 6, Name: "Wireless Mouse", Price: MustMoney("39.99"), Image: "/wireless-mouse.png", Rating: 4.2, Reviews: 204, Category: "Computing", SortOrder: 6},
		{ID: 7, Name: "Gaming Keyboard", Price: MustMoney("129.99"), OriginalPrice: MoneyPtr("159.99"), Image: "/gaming-keyboard.png", Rating: 4.7, Reviews: 145, Badge: constants.BadgeGaming, Category: "Computing", SortOrder: 7},
		{ID: 8, Name: "Webcam HD", Price: MustMoney("69.99"), Image: "/hd-webcam.png", Rating: 4.1, Reviews: 87, Category: "Electronics", SortOrder: 8},
		{ID: 9, Name: "Phone Case", Price: MustMoney("24.99"), OriginalPrice: MoneyPtr("34.99"), Image: "/colorful-phone-case-display.png", Rating: 4.3, Reviews: 312, Badge: constants.BadgeSale, Category: "Accessories", SortOrder: 9},
	}
}

// CatalogDetails 内置商品详情
func CatalogDetails() []ProductDetail {
	return []ProductDetail{
		{
			ProductID: 1,
			Images: StringArray{
				"/wireless-headphones.png",
				"/placeholder.svg?height=500&width=500&text=Headphones+Side",
				"/placeholder.svg?height=500&width=500&text=Headphones+Back",
				"/placeholder.svg?height=500&width=500&text=Headphones+Case",
			},
			Description: "Experience premium sound quality with our latest wireless headphones. Featuring active noise cancellation, 30-hour battery life, and premium comfort for all-day listening.",
			Features: StringArray{
				"Active Noise Cancellation",
				"30-hour battery life",
				"Quick charge: 5 min = 3 hours",
				"Premium leather ear cups",
				"Bluetooth 5.0 connectivity",
				"Built-in microphone",
			},
			Specifications: SpecList{
				{Name: "Driver Size", Value: "40mm"},
				{Name: "Frequency Response", Value: "20Hz - 20kHz"},
				{Name: "Impedance", Value: "32 ohms"},
				{Name: "Weight", Value: "250g"},
				{Name: "Connectivity", Value: "Bluetooth 5.0, 3.5mm jack"},
				{Name: "Battery", Value: "30 hours playback"},
			},
			InStock: true,
		},
		{
			ProductID: 2,
			Images: StringArray{
				"/smartwatch-lifestyle.png",
				"/placeholder.svg?height=500&width=500&text=Watch+Side",
				"/placeholder.svg?height=500&width=500&text=Watch+Back",
				"/placeholder.svg?height=500&width=500&text=Watch+Bands",
			},
			Description: "Stay connected and track your fitness with our advanced smartwatch. Features heart rate monitoring, GPS tracking, and 7-day battery life.",
			Features: StringArray{
				"Heart rate monitoring",
				"GPS tracking",
				"7-day battery life",
				"Water resistant (50m)",
				"Sleep tracking",
				"Multiple sport modes",
			},
			Specifications: SpecList{
				{Name: "Display", Value: `1.4" AMOLED`},
				{Name: "Resolution", Value: "454 x 454"},
				{Name: "Battery", Value: "7 days typical use"},
				{Name: "Water Resistance", Value: "5ATM"},
				{Name: "Connectivity", Value: "Bluetooth 5.0, WiFi"},
				{Name: "Sensors", Value: "Heart rate, GPS, Accelerometer"},
			},
			InStock: true,
		},
	}
}

// CatalogCategories 内置分类
func CatalogCategories() []Category {
	return []Category{
		{Name: "Electronics", Image: "/electronics-category.png", Count: 156, Description: "Latest smartphones, tablets, and electronic gadgets", Subcategories: StringArray{"Smartphones", "Tablets", "Smart Home", "Wearables"}, Featured: true, SortOrder: 1},
		{Name: "Audio", Image: "/audio-category.jpg", Count: 67, Description: "Premium headphones, speakers, and audio equipment", Subcategories: StringArray{"Headphones", "Speakers", "Earbuds", "Audio Accessories"}, Featured: true, SortOrder: 2},
		{Name: "Computing", Image: "/computing-category.jpg", Count: 124, Description: "Laptops, desktops, and computer accessories", Subcategories: StringArray{"Laptops", "Keyboards", "Mice", "Monitors", "Storage"}, Featured: true, SortOrder: 3},
		{Name: "Accessories", Image: "/accessories-category.png", Count: 89, Description: "Cases, stands, cables, and other tech accessories", Subcategories: StringArray{"Phone Cases", "Laptop Stands", "Cables", "Chargers"}, Featured: true, SortOrder: 4},
		{Name: "Gaming", Image: "/ultimate-gaming-setup.png", Count: 45, Description: "Gaming peripherals and accessories", Subcategories: StringArray{"Gaming Keyboards", "Gaming Mice", "Controllers", "Headsets"}, SortOrder: 5},
		{Name: "Photography", Image: "/assorted-camera-gear.png", Count: 32, Description: "Cameras, lenses, and photography equipment", Subcategories: StringArray{"Cameras", "Lenses", "Tripods", "Camera Bags"}, SortOrder: 6},
	}
}

// SeedCatalog 写入内置目录，可重复执行
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := CatalogCategories()
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"image", "count", "description", "subcategories", "featured", "sort_order"}),
		}).Create(&categories).Error; err != nil {
			return err
		}

		products := CatalogProducts()
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&products).Error; err != nil {
			return err
		}

		details := CatalogDetails()
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).Create(&details).Error
	})
}
