package models

import "github.com/shopspring/decimal"

// MenuItem is a sellable item in the café's catalog.
// The catalog owns the canonical price and stock; order lines and sales
// keep their own copies.
type MenuItem struct {
	// ID is the unique item identity.
	ID int64 `json:"id"`

	// Name is the display name (e.g., "Türk Kahvesi").
	Name string `json:"name"`

	// Price is the unit price applied when an order line is created.
	// Changing it later does not alter lines already placed.
	Price decimal.Decimal `json:"price"`

	// Category groups items on the menu (e.g., "Tatlılar").
	Category string `json:"category"`

	// Stock is the number of units still available. Never negative.
	Stock int `json:"stock"`
}

// InStock reports whether at least one unit can be sold.
func (m MenuItem) InStock() bool {
	return m.Stock > 0
}

// MenuCategory is one section of the menu with its items in catalog order.
type MenuCategory struct {
	Name  string
	Items []MenuItem
}
