// Package models defines the domain models for the café point of sale.
//
// # Models
//
//   - MenuItem: a sellable item with price and stock, owned by the catalog
//   - OrderLine: a copy of a menu item placed on a table's open tab
//   - Table: one table of the fixed pool with its open tab and total
//   - Sale: an immutable record of a closed bill
//   - User: an admin account for the login gate
//
// # Ownership
//
// The catalog is the only owner of canonical price and stock. Order lines and
// sales hold their own copies with no back-reference, so editing or removing a
// menu item never rewrites an open tab or the sales history. Stock is the one
// coupled value: placing an order line takes a unit, cancelling it gives the
// unit back.
//
// Money is held as decimal.Decimal so a table's total is always exactly the
// sum of its lines.
package models
