package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestJournal_Record(t *testing.T) {
	j := New(nil)
	at := time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)

	sale, err := j.Record(d(90), models.PaymentCard, at)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if sale.ID == "" {
		t.Error("expected sale ID to be generated")
	}
	if !sale.Amount.Equal(d(90)) || sale.PaymentMethod != models.PaymentCard || !sale.Timestamp.Equal(at) {
		t.Errorf("sale = %+v", sale)
	}

	other, _ := j.Record(d(45), models.PaymentCash, at)
	if other.ID == sale.ID {
		t.Error("sale ids not unique")
	}
	if j.Len() != 2 {
		t.Errorf("Len() = %d, want 2", j.Len())
	}
}

func TestJournal_RecordRejects(t *testing.T) {
	j := New(nil)
	now := time.Now()

	tests := []struct {
		name   string
		amount decimal.Decimal
		method models.PaymentMethod
	}{
		{"zero amount", decimal.Zero, models.PaymentCash},
		{"negative amount", d(-5), models.PaymentCash},
		{"unknown method", d(5), models.PaymentMethod("Cheque")},
		{"empty method", d(5), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := j.Record(tt.amount, tt.method, now); !errors.Is(err, ErrInvalidSale) {
				t.Errorf("Record() error = %v, want ErrInvalidSale", err)
			}
		})
	}
	if j.Len() != 0 {
		t.Errorf("rejected sales were recorded: %d", j.Len())
	}
}

func TestJournal_Recent(t *testing.T) {
	j := New(nil)
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		j.Record(d(int64(i)), models.PaymentCash, base.Add(time.Duration(i)*time.Minute))
	}

	got := j.Recent(3)
	if len(got) != 3 {
		t.Fatalf("Recent(3) len = %d", len(got))
	}
	for i, want := range []int64{5, 4, 3} {
		if !got[i].Amount.Equal(d(want)) {
			t.Errorf("Recent(3)[%d] = %s, want %d", i, got[i].Amount, want)
		}
	}

	if got := j.Recent(50); len(got) != 5 {
		t.Errorf("Recent(50) len = %d, want 5", len(got))
	}
	if got := j.Recent(0); len(got) != 0 {
		t.Errorf("Recent(0) len = %d, want 0", len(got))
	}
}

func TestJournal_DailyTotal(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	saleTime := time.Date(2026, 10, 17, 23, 30, 0, 0, loc)

	j := New(nil)
	j.Record(d(90), models.PaymentCard, saleTime)
	j.Record(d(10), models.PaymentCash, time.Date(2026, 10, 17, 0, 0, 0, 0, loc))
	j.Record(d(7), models.PaymentCash, time.Date(2026, 10, 16, 23, 59, 59, 0, loc))
	j.Record(d(3), models.PaymentCash, time.Date(2026, 10, 18, 0, 0, 0, 0, loc))

	tests := []struct {
		name string
		ref  time.Time
		want int64
	}{
		{"at exact sale timestamp", saleTime, 100},
		{"one calendar day later", saleTime.AddDate(0, 0, 1), 3},
		{"previous day", saleTime.AddDate(0, 0, -1), 7},
		{"unrelated day", saleTime.AddDate(0, 0, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.DailyTotal(tt.ref); !got.Equal(d(tt.want)) {
				t.Errorf("DailyTotal() = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestJournal_MonthlyTotal(t *testing.T) {
	j := New(nil)
	j.Record(d(100), models.PaymentCard, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC))
	j.Record(d(50), models.PaymentCash, time.Date(2026, 10, 31, 22, 0, 0, 0, time.UTC))
	j.Record(d(25), models.PaymentCash, time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC))
	j.Record(d(5), models.PaymentCash, time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC))

	ref := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	if got := j.MonthlyTotal(ref); !got.Equal(d(150)) {
		t.Errorf("MonthlyTotal() = %s, want 150", got)
	}
	if got := j.MonthlyTotal(ref.AddDate(0, -1, 0)); !got.Equal(d(25)) {
		t.Errorf("MonthlyTotal(previous month) = %s, want 25", got)
	}
}

func TestJournal_Restore(t *testing.T) {
	sales := []models.Sale{
		{ID: "a", Amount: d(10), Timestamp: time.Now(), PaymentMethod: models.PaymentCash},
		{ID: "b", Amount: d(20), Timestamp: time.Now(), PaymentMethod: models.PaymentCard},
	}
	j := New(sales)
	sales[0].ID = "changed"

	all := j.All()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("All() = %+v", all)
	}
}
