// Package catalog holds the café menu: items, prices and stock counts.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

var (
	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrDuplicateItem is returned by Add for an explicit id already in use.
	ErrDuplicateItem = errors.New("menu item id already exists")
	// ErrInvalidItem wraps every validation failure of a menu item.
	ErrInvalidItem = errors.New("invalid menu item")
	// ErrOutOfStock is returned when stock cannot cover a decrement.
	ErrOutOfStock = errors.New("menu item out of stock")
)

// Catalog is the in-memory menu. It keeps items in insertion order.
// Catalog is not safe for concurrent use; the session controller serializes
// access to it.
type Catalog struct {
	items []models.MenuItem
	// lastID is the highest id ever held. Remove never lowers it, so an
	// assigned id is never handed out twice.
	lastID int64
}

// New creates a catalog holding a copy of items.
func New(items []models.MenuItem) *Catalog {
	c := &Catalog{}
	c.Restore(items)
	return c
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items on the menu.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item with the given id.
func (c *Catalog) Item(id int64) (models.MenuItem, bool) {
	i := c.index(id)
	if i < 0 {
		return models.MenuItem{}, false
	}
	return c.items[i], true
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range c.items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// ByCategory groups the menu by category, preserving catalog order both
// between and within categories.
func (c *Catalog) ByCategory() []models.MenuCategory {
	groups := make([]models.MenuCategory, 0)
	pos := make(map[string]int)
	for _, item := range c.items {
		i, ok := pos[item.Category]
		if !ok {
			i = len(groups)
			pos[item.Category] = i
			groups = append(groups, models.MenuCategory{Name: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Add appends a new item. An ID of zero is replaced with the next free id
// (one past the current maximum). The stored item is returned.
func (c *Catalog) Add(item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if err := validate(item); err != nil {
		return models.MenuItem{}, err
	}

	if item.ID == 0 {
		item.ID = c.lastID + 1
	} else if c.index(item.ID) >= 0 {
		return models.MenuItem{}, fmt.Errorf("%w: %d", ErrDuplicateItem, item.ID)
	}

	c.items = append(c.items, item)
	if item.ID > c.lastID {
		c.lastID = item.ID
	}
	return item, nil
}

// Remove deletes the item with the given id. It reports whether an item was
// removed; removing a missing item is a no-op.
func (c *Catalog) Remove(id int64) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// UpdatePrice sets the price used for future order lines.
// It reports whether the item exists.
func (c *Catalog) UpdatePrice(id int64, price decimal.Decimal) (bool, error) {
	if price.IsNegative() {
		return false, fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	}
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	c.items[i].Price = price
	return true, nil
}

// UpdateStock overwrites the stock count. This is the admin override and is
// independent of order placement and cancellation.
// It reports whether the item exists.
func (c *Catalog) UpdateStock(id int64, stock int) (bool, error) {
	if stock < 0 {
		return false, fmt.Errorf("%w: stock must not be negative", ErrInvalidItem)
	}
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	c.items[i].Stock = stock
	return true, nil
}

// DecrementStock takes one unit of the item.
func (c *Catalog) DecrementStock(id int64) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	if c.items[i].Stock <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, c.items[i].Name)
	}
	c.items[i].Stock--
	return nil
}

// IncrementStock gives one unit back to the item. There is no upper bound:
// a cancelled line always returns its unit, even after an admin override.
// It reports whether the item still exists.
func (c *Catalog) IncrementStock(id int64) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i].Stock++
	return true
}

// Snapshot returns the items for persistence.
func (c *Catalog) Snapshot() []models.MenuItem {
	return c.Items()
}

// Restore replaces the whole menu with items.
func (c *Catalog) Restore(items []models.MenuItem) {
	c.items = make([]models.MenuItem, len(items))
	copy(c.items, items)
	c.lastID = 0
	for _, item := range c.items {
		if item.ID > c.lastID {
			c.lastID = item.ID
		}
	}
}

func (c *Catalog) index(id int64) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func validate(item models.MenuItem) error {
	switch {
	case item.ID < 0:
		return fmt.Errorf("%w: id must not be negative", ErrInvalidItem)
	case item.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case item.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidItem)
	case item.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	case item.Stock < 0:
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidItem)
	}
	return nil
}
