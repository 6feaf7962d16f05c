package domain

import "github.com/shopspring/decimal"

// DefaultAdminPassword is the shared secret guarding the administrator menu.
const DefaultAdminPassword = "admin123"

// ExchangeRate converts one shekel into dollars.
var ExchangeRate = decimal.RequireFromString("0.29")

// DefaultCatalog returns a fresh copy of the factory inventory, in display order.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Key: "sprite", Item: Item{Quantity: 10, Price: decimal.RequireFromString("3.50")}},
		{Key: "coca-cola", Item: Item{Quantity: 15, Price: decimal.RequireFromString("5.00")}},
		{Key: "doritos", Item: Item{Quantity: 1, Price: decimal.RequireFromString("2.50")}},
		{Key: "snickers", Item: Item{Quantity: 12, Price: decimal.RequireFromString("2.00")}},
	}
}
