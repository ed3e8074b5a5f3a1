package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mabkhara/storefront"
)

func main() {
	// DATABASE_URL selects postgres; the default is an in-memory sqlite
	// catalog seeded below.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := storefront.OpenDatabase(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&storefront.Product{}, &storefront.Category{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the database with the sample fragrance catalog.
	categories := SampleCategories()
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	products := SampleProducts()
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}

	fmt.Printf("Database initialized with %d products in %d categories\n", len(products), len(categories))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service, err := storefront.NewWithConfig(db, storefront.Config{
		Logger: logger,
		Observability: &storefront.ObservabilityConfig{
			ServiceName:        "storefront-devserver",
			EnableServerTiming: true,
		},
	})
	if err != nil {
		log.Fatal("Failed to create storefront service:", err)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	fmt.Println("Storefront development server starting...")
	fmt.Println("Service endpoints:")
	fmt.Printf("  Service Document:   http://localhost%s/\n", addr)
	fmt.Printf("  Products:           http://localhost%s/products\n", addr)
	fmt.Printf("  Filtered products:  http://localhost%s/products?category=incense&minPrice=50&maxPrice=300&orderby=price\n", addr)
	fmt.Printf("  Single product:     http://localhost%s/products/oud-cambodi\n", addr)
	fmt.Printf("  Categories:         http://localhost%s/categories\n", addr)
	fmt.Printf("  Category products:  http://localhost%s/categories/incense/products?orderby=rating\n", addr)
	fmt.Printf("  Create cart:        POST http://localhost%s/carts\n", addr)
	fmt.Printf("  Add item:           POST http://localhost%s/carts/{id}/items (body: {\"productId\": \"oud-cambodi\", \"quantity\": 2})\n", addr)
	fmt.Println()

	if err := service.ListenAndServe(addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
