package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmynk/adisyon/internal/catalog"
	"github.com/mmynk/adisyon/internal/models"
	"github.com/mmynk/adisyon/internal/storage"
)

// Load restores the menu and sales snapshots from the store. A store with
// no menu snapshot is seeded with the default menu. Tables always start
// vacant.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var menu []models.MenuItem
	found, err := c.load(ctx, storage.MenuKey, &menu)
	if err != nil {
		return err
	}
	if found {
		c.catalog.Restore(menu)
	} else {
		c.catalog.Restore(catalog.DefaultMenu())
		c.saveMenu(ctx)
		slog.Info("Seeded default menu", "items", c.catalog.Len())
	}

	var sales []models.Sale
	if _, err := c.load(ctx, storage.SalesKey, &sales); err != nil {
		return err
	}
	c.journal.Restore(sales)

	slog.Info("Session state loaded",
		"menu_items", c.catalog.Len(),
		"sales", c.journal.Len(),
		"tables", c.ledger.Len(),
	)
	return nil
}

func (c *Controller) load(ctx context.Context, key string, v any) (bool, error) {
	blob, ok, err := c.store.Load(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", key, err)
	}
	return true, nil
}

// saveMenu and saveSales are best effort: a failed write is logged and the
// in-memory state stays authoritative.
func (c *Controller) saveMenu(ctx context.Context) {
	c.save(ctx, storage.MenuKey, c.catalog.Snapshot())
}

func (c *Controller) saveSales(ctx context.Context) {
	c.save(ctx, storage.SalesKey, c.journal.Snapshot())
}

func (c *Controller) save(ctx context.Context, key string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode snapshot", "key", key, "error", err)
		return
	}
	// The action has already committed; a caller going away must not skip the write.
	if err := c.store.Save(context.WithoutCancel(ctx), key, blob); err != nil {
		slog.Error("Failed to save snapshot", "key", key, "error", err)
	}
}
