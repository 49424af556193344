// Package ledger tracks the café's tables and their open tabs.
package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

// ErrTableNotFound is returned for a table id outside 1..N.
var ErrTableNotFound = errors.New("table not found")

// Ledger is the fixed pool of tables. Tables are numbered 1..N, start
// vacant and are never destroyed. Ledger is not safe for concurrent use.
type Ledger struct {
	tables []models.Table
}

// New creates a ledger with n vacant tables.
func New(n int) *Ledger {
	tables := make([]models.Table, n)
	for i := range tables {
		tables[i] = vacant(i + 1)
	}
	return &Ledger{tables: tables}
}

// Len returns the pool size.
func (l *Ledger) Len() int {
	return len(l.tables)
}

// Tables returns a copy of every table ordered by id.
func (l *Ledger) Tables() []models.Table {
	out := make([]models.Table, len(l.tables))
	for i, t := range l.tables {
		out[i] = t.Clone()
	}
	return out
}

// Table returns a copy of the table with the given id.
func (l *Ledger) Table(id int) (models.Table, error) {
	t, err := l.table(id)
	if err != nil {
		return models.Table{}, err
	}
	return t.Clone(), nil
}

// Occupied returns the number of tables with an open tab.
func (l *Ledger) Occupied() int {
	n := 0
	for _, t := range l.tables {
		if t.Status == models.TableOccupied {
			n++
		}
	}
	return n
}

// AddLine places one unit of item on the table's tab with a fresh order id.
// Stock is not checked here; callers take the unit from the catalog first.
func (l *Ledger) AddLine(tableID int, item models.MenuItem) (models.OrderLine, error) {
	t, err := l.table(tableID)
	if err != nil {
		return models.OrderLine{}, err
	}

	line := models.OrderLine{
		OrderID:  uuid.New().String(),
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
	}
	t.Orders = append(t.Orders, line)
	settle(t)
	return line, nil
}

// RemoveLine takes the line with orderID off the table's tab. The returned
// bool is false when no such line exists, in which case nothing changes.
func (l *Ledger) RemoveLine(tableID int, orderID string) (models.OrderLine, bool, error) {
	t, err := l.table(tableID)
	if err != nil {
		return models.OrderLine{}, false, err
	}

	for i, line := range t.Orders {
		if line.OrderID != orderID {
			continue
		}
		t.Orders = append(t.Orders[:i:i], t.Orders[i+1:]...)
		settle(t)
		return line, true, nil
	}
	return models.OrderLine{}, false, nil
}

// Reset clears the table and returns its state from just before the reset.
func (l *Ledger) Reset(tableID int) (models.Table, error) {
	t, err := l.table(tableID)
	if err != nil {
		return models.Table{}, err
	}
	before := t.Clone()
	*t = vacant(tableID)
	return before, nil
}

func (l *Ledger) table(id int) (*models.Table, error) {
	if id < 1 || id > len(l.tables) {
		return nil, fmt.Errorf("%w: %d", ErrTableNotFound, id)
	}
	return &l.tables[id-1], nil
}

// settle recomputes total and status from the order lines.
func settle(t *models.Table) {
	total := decimal.Zero
	for _, line := range t.Orders {
		total = total.Add(line.Price)
	}
	t.Total = total
	if len(t.Orders) > 0 {
		t.Status = models.TableOccupied
	} else {
		t.Status = models.TableVacant
		t.Orders = nil
	}
}

func vacant(id int) models.Table {
	return models.Table{
		ID:     id,
		Status: models.TableVacant,
		Total:  decimal.Zero,
	}
}
