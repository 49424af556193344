// Package session coordinates the catalog, the table ledger and the sales
// journal. Every user action is one atomic state transition: the controller
// holds a single lock for the whole action, so one action fully completes,
// including its stock update and snapshot save, before the next begins.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/catalog"
	"github.com/mmynk/adisyon/internal/events"
	"github.com/mmynk/adisyon/internal/journal"
	"github.com/mmynk/adisyon/internal/ledger"
	"github.com/mmynk/adisyon/internal/metrics"
	"github.com/mmynk/adisyon/internal/models"
	"github.com/mmynk/adisyon/internal/storage"
)

// DefaultTableCount is the size of the table pool when none is configured.
const DefaultTableCount = 32

// ErrInvalidPaymentMethod is returned by CloseBill for anything but Cash or Card.
var ErrInvalidPaymentMethod = errors.New("a payment method must be selected")

// Controller is the state container for one café.
type Controller struct {
	mu sync.Mutex

	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	journal *journal.Journal

	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher sets where sale events are sent.
func WithPublisher(p events.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithMetrics sets the Prometheus instruments to update.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithClock overrides the time source used to stamp sales.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a controller with tableCount vacant tables and an empty menu.
// Call Load to restore the persisted menu and sales.
func New(store storage.Store, tableCount int, opts ...Option) *Controller {
	if tableCount <= 0 {
		tableCount = DefaultTableCount
	}
	c := &Controller{
		catalog:   catalog.New(nil),
		ledger:    ledger.New(tableCount),
		journal:   journal.New(nil),
		store:     store,
		publisher: events.NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PlaceOrder adds one unit of a menu item to a table's tab.
// The stock check, the stock decrement and the new order line form a single
// transaction: an out-of-stock item is refused with nothing changed.
func (c *Controller) PlaceOrder(ctx context.Context, tableID int, itemID int64) (models.Table, models.OrderLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.ledger.Table(tableID); err != nil {
		return models.Table{}, models.OrderLine{}, err
	}
	item, ok := c.catalog.Item(itemID)
	if !ok {
		return models.Table{}, models.OrderLine{}, fmt.Errorf("%w: %d", catalog.ErrItemNotFound, itemID)
	}
	if !item.InStock() {
		return models.Table{}, models.OrderLine{}, fmt.Errorf("%w: %s", catalog.ErrOutOfStock, item.Name)
	}

	if err := c.catalog.DecrementStock(itemID); err != nil {
		return models.Table{}, models.OrderLine{}, err
	}
	line, err := c.ledger.AddLine(tableID, item)
	if err != nil {
		c.catalog.IncrementStock(itemID)
		return models.Table{}, models.OrderLine{}, err
	}

	c.saveMenu(ctx)
	c.metrics.OrderPlaced(c.ledger.Occupied())

	table, _ := c.ledger.Table(tableID)
	slog.Info("Order placed",
		"table_id", tableID,
		"item_id", itemID,
		"order_id", line.OrderID,
		"total", table.Total.String(),
	)
	return table, line, nil
}

// CancelOrderLine removes one order line from a table's tab and gives its
// unit back to the catalog. The returned bool is false when the table has no
// such line; that is a no-op, not an error.
func (c *Controller) CancelOrderLine(ctx context.Context, tableID int, orderID string) (models.Table, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok, err := c.ledger.RemoveLine(tableID, orderID)
	if err != nil {
		return models.Table{}, false, err
	}
	table, _ := c.ledger.Table(tableID)
	if !ok {
		slog.Debug("Order line not found, nothing to cancel", "table_id", tableID, "order_id", orderID)
		return table, false, nil
	}

	if !c.catalog.IncrementStock(line.ItemID) {
		slog.Warn("Cancelled line refers to a removed menu item, stock not restored",
			"item_id", line.ItemID,
			"order_id", orderID,
		)
	} else {
		c.saveMenu(ctx)
	}
	c.metrics.OrderCancelled(c.ledger.Occupied())

	slog.Info("Order line cancelled",
		"table_id", tableID,
		"order_id", orderID,
		"total", table.Total.String(),
	)
	return table, true, nil
}

// CloseBill finalizes a table's tab. When the total is positive a sale is
// recorded with the given payment method; the table is reset to vacant in
// every case. The returned sale is nil when nothing was owed.
func (c *Controller) CloseBill(ctx context.Context, tableID int, method models.PaymentMethod) (*models.Sale, models.Table, error) {
	if !method.Valid() {
		return nil, models.Table{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}

	c.mu.Lock()
	before, err := c.ledger.Table(tableID)
	if err != nil {
		c.mu.Unlock()
		return nil, models.Table{}, err
	}

	var sale *models.Sale
	if before.Total.IsPositive() {
		recorded, err := c.journal.Record(before.Total, method, c.now())
		if err != nil {
			c.mu.Unlock()
			return nil, models.Table{}, err
		}
		sale = &recorded
	}

	if _, err := c.ledger.Reset(tableID); err != nil {
		c.mu.Unlock()
		return nil, models.Table{}, err
	}
	if sale != nil {
		c.saveSales(ctx)
	}
	c.metrics.BillClosed(sale, c.ledger.Occupied())
	table, _ := c.ledger.Table(tableID)
	c.mu.Unlock()

	if sale == nil {
		slog.Info("Empty bill closed", "table_id", tableID)
		return nil, table, nil
	}

	slog.Info("Bill closed",
		"table_id", tableID,
		"sale_id", sale.ID,
		"amount", sale.Amount.String(),
		"payment_method", sale.PaymentMethod,
	)
	if err := c.publisher.PublishSale(context.WithoutCancel(ctx), events.NewSaleRecorded(*sale, before)); err != nil {
		slog.Error("Failed to publish sale event", "sale_id", sale.ID, "error", err)
	}
	return sale, table, nil
}

// AddMenuItem adds a new item to the catalog.
func (c *Controller) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	added, err := c.catalog.Add(item)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.saveMenu(ctx)
	slog.Info("Menu item added", "item_id", added.ID, "name", added.Name, "category", added.Category)
	return added, nil
}

// RemoveMenuItem deletes a catalog item. Order lines already placed keep
// their copy. It reports whether the item existed.
func (c *Controller) RemoveMenuItem(ctx context.Context, id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.catalog.Remove(id) {
		return false
	}
	c.saveMenu(ctx)
	slog.Info("Menu item removed", "item_id", id)
	return true
}

// UpdatePrice changes the price used for future order lines.
// It reports whether the item exists.
func (c *Controller) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.catalog.UpdatePrice(id, price)
	if err != nil || !ok {
		return ok, err
	}
	c.saveMenu(ctx)
	slog.Info("Menu price updated", "item_id", id, "price", price.String())
	return true, nil
}

// UpdateStock overwrites an item's stock count.
// It reports whether the item exists.
func (c *Controller) UpdateStock(ctx context.Context, id int64, stock int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.catalog.UpdateStock(id, stock)
	if err != nil || !ok {
		return ok, err
	}
	c.saveMenu(ctx)
	slog.Info("Menu stock updated", "item_id", id, "stock", stock)
	return true, nil
}
