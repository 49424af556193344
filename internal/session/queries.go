package session

import (
	"time"

	"github.com/mmynk/adisyon/internal/models"
)

// Tables returns every table ordered by id.
func (c *Controller) Tables() []models.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Tables()
}

// Table returns one table.
func (c *Controller) Table(id int) (models.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Table(id)
}

// Menu returns the catalog in order.
func (c *Controller) Menu() []models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Items()
}

// MenuItem returns one catalog item.
func (c *Controller) MenuItem(id int64) (models.MenuItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Item(id)
}

// MenuByCategory returns the catalog grouped by category.
func (c *Controller) MenuByCategory() []models.MenuCategory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.ByCategory()
}

// Categories returns the distinct menu categories.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Categories()
}

// Sales returns the full sales history in recording order.
func (c *Controller) Sales() []models.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal.All()
}

// RecentSales returns up to n sales, newest first.
func (c *Controller) RecentSales(n int) []models.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal.Recent(n)
}

// Revenue returns the dashboard figures for the day and month of ref.
func (c *Controller) Revenue(ref time.Time) models.RevenueSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.RevenueSummary{
		Daily:         c.journal.DailyTotal(ref),
		Monthly:       c.journal.MonthlyTotal(ref),
		MenuItemCount: c.catalog.Len(),
		SaleCount:     c.journal.Len(),
	}
}

// Now returns the controller's current time.
func (c *Controller) Now() time.Time {
	return c.now()
}
