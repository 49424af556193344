package models

import "github.com/shopspring/decimal"

// TableStatus is the lifecycle state of a table.
type TableStatus string

const (
	TableVacant   TableStatus = "vacant"
	TableOccupied TableStatus = "occupied"
)

// OrderLine is one unit of a menu item placed on a table's open tab.
// It carries a copy of the item as it was when added.
type OrderLine struct {
	// OrderID is unique per add, even for repeated adds of the same item.
	OrderID string

	ItemID   int64
	Name     string
	Price    decimal.Decimal
	Category string
}

// Table is one table of the café with its open tab.
//
// Invariants: Total equals the sum of Orders[*].Price, and Status is
// TableOccupied exactly when Orders is non-empty.
type Table struct {
	// ID is the table number, 1..N.
	ID int

	Status TableStatus

	// Orders holds the active order lines in insertion order.
	Orders []OrderLine

	Total decimal.Decimal
}

// Clone returns a copy that shares no slices with t.
func (t Table) Clone() Table {
	c := t
	if t.Orders != nil {
		c.Orders = make([]OrderLine, len(t.Orders))
		copy(c.Orders, t.Orders)
	}
	return c
}
