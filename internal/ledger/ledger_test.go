package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

var (
	coffee = models.MenuItem{ID: 1, Name: "Türk Kahvesi", Price: decimal.NewFromInt(45), Category: "Sıcak İçecekler", Stock: 10}
	cake   = models.MenuItem{ID: 11, Name: "Cheesecake", Price: decimal.RequireFromString("110.50"), Category: "Tatlılar", Stock: 10}
)

// checkInvariants verifies total and status against the order lines.
func checkInvariants(t *testing.T, table models.Table) {
	t.Helper()

	sum := decimal.Zero
	for _, line := range table.Orders {
		sum = sum.Add(line.Price)
	}
	if !table.Total.Equal(sum) {
		t.Errorf("table %d: total = %s, sum of lines = %s", table.ID, table.Total, sum)
	}

	occupied := table.Status == models.TableOccupied
	if occupied != (len(table.Orders) > 0) {
		t.Errorf("table %d: status = %s with %d lines", table.ID, table.Status, len(table.Orders))
	}
}

func TestNew(t *testing.T) {
	l := New(32)
	tables := l.Tables()
	if len(tables) != 32 {
		t.Fatalf("len(Tables()) = %d, want 32", len(tables))
	}
	for i, table := range tables {
		if table.ID != i+1 {
			t.Errorf("tables[%d].ID = %d", i, table.ID)
		}
		if table.Status != models.TableVacant || len(table.Orders) != 0 || !table.Total.IsZero() {
			t.Errorf("table %d not vacant: %+v", table.ID, table)
		}
	}
	if l.Occupied() != 0 {
		t.Errorf("Occupied() = %d, want 0", l.Occupied())
	}
}

func TestLedger_AddLine(t *testing.T) {
	l := New(8)

	first, err := l.AddLine(5, coffee)
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	second, err := l.AddLine(5, coffee)
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := l.AddLine(5, cake); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if first.OrderID == "" || first.OrderID == second.OrderID {
		t.Errorf("order ids not unique: %q, %q", first.OrderID, second.OrderID)
	}

	table, _ := l.Table(5)
	checkInvariants(t, table)
	if table.Status != models.TableOccupied {
		t.Errorf("status = %s, want occupied", table.Status)
	}
	if want := decimal.RequireFromString("200.50"); !table.Total.Equal(want) {
		t.Errorf("total = %s, want %s", table.Total, want)
	}
	if table.Orders[2].Name != "Cheesecake" {
		t.Errorf("lines not in insertion order: %+v", table.Orders)
	}
	if l.Occupied() != 1 {
		t.Errorf("Occupied() = %d, want 1", l.Occupied())
	}
}

func TestLedger_AddLineUnknownTable(t *testing.T) {
	l := New(4)
	for _, id := range []int{0, -1, 5} {
		if _, err := l.AddLine(id, coffee); !errors.Is(err, ErrTableNotFound) {
			t.Errorf("AddLine(%d) error = %v, want ErrTableNotFound", id, err)
		}
	}
}

func TestLedger_RemoveLine(t *testing.T) {
	l := New(4)
	a, _ := l.AddLine(2, coffee)
	b, _ := l.AddLine(2, cake)

	t.Run("missing line is a no-op", func(t *testing.T) {
		_, ok, err := l.RemoveLine(2, "nope")
		if err != nil || ok {
			t.Fatalf("RemoveLine(missing) = %v, %v", ok, err)
		}
		table, _ := l.Table(2)
		if len(table.Orders) != 2 {
			t.Errorf("lines = %d, want 2", len(table.Orders))
		}
	})

	t.Run("remove keeps table occupied", func(t *testing.T) {
		line, ok, err := l.RemoveLine(2, a.OrderID)
		if err != nil || !ok {
			t.Fatalf("RemoveLine = %v, %v", ok, err)
		}
		if line.ItemID != coffee.ID {
			t.Errorf("removed item %d, want %d", line.ItemID, coffee.ID)
		}
		table, _ := l.Table(2)
		checkInvariants(t, table)
		if table.Status != models.TableOccupied {
			t.Errorf("status = %s, want occupied", table.Status)
		}
	})

	t.Run("removing last line vacates table", func(t *testing.T) {
		if _, ok, _ := l.RemoveLine(2, b.OrderID); !ok {
			t.Fatal("RemoveLine(b) = false")
		}
		table, _ := l.Table(2)
		checkInvariants(t, table)
		if table.Status != models.TableVacant || !table.Total.IsZero() {
			t.Errorf("table = %+v, want vacant with zero total", table)
		}
	})
}

func TestLedger_Reset(t *testing.T) {
	l := New(4)
	l.AddLine(3, coffee)
	l.AddLine(3, coffee)

	before, err := l.Reset(3)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !before.Total.Equal(decimal.NewFromInt(90)) || len(before.Orders) != 2 {
		t.Errorf("before = %+v", before)
	}

	table, _ := l.Table(3)
	checkInvariants(t, table)
	if table.Status != models.TableVacant || len(table.Orders) != 0 {
		t.Errorf("after reset = %+v", table)
	}

	if _, err := l.Reset(9); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("Reset(9) error = %v, want ErrTableNotFound", err)
	}
}

func TestLedger_TablesAreCopies(t *testing.T) {
	l := New(2)
	l.AddLine(1, coffee)

	table, _ := l.Table(1)
	table.Orders[0].Price = decimal.NewFromInt(1)

	again, _ := l.Table(1)
	if !again.Orders[0].Price.Equal(coffee.Price) {
		t.Error("ledger mutated through returned table")
	}
}

func TestLedger_LineKeepsPriceCopy(t *testing.T) {
	l := New(1)
	item := coffee
	l.AddLine(1, item)

	item.Price = decimal.NewFromInt(1000)
	table, _ := l.Table(1)
	if !table.Total.Equal(decimal.NewFromInt(45)) {
		t.Errorf("total = %s, want 45", table.Total)
	}
}
