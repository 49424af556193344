// Package journal keeps the append-only sales history and the revenue
// figures derived from it.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

// ErrInvalidSale is returned by Record for a non-positive amount or an
// unknown payment method.
var ErrInvalidSale = errors.New("invalid sale")

// Journal is the ordered list of sales. Sales are never changed or removed
// once recorded. Journal is not safe for concurrent use.
type Journal struct {
	sales []models.Sale
}

// New creates a journal holding a copy of sales.
func New(sales []models.Sale) *Journal {
	j := &Journal{}
	j.Restore(sales)
	return j
}

// Record appends a sale for amount paid with method at the given time.
func (j *Journal) Record(amount decimal.Decimal, method models.PaymentMethod, at time.Time) (models.Sale, error) {
	if !amount.IsPositive() {
		return models.Sale{}, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidSale, amount)
	}
	if !method.Valid() {
		return models.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidSale, method)
	}

	sale := models.Sale{
		ID:            uuid.New().String(),
		Amount:        amount,
		Timestamp:     at,
		PaymentMethod: method,
	}
	j.sales = append(j.sales, sale)
	return sale, nil
}

// Len returns the number of recorded sales.
func (j *Journal) Len() int {
	return len(j.sales)
}

// All returns every sale in recording order.
func (j *Journal) All() []models.Sale {
	out := make([]models.Sale, len(j.sales))
	copy(out, j.sales)
	return out
}

// Recent returns up to n sales, newest first.
func (j *Journal) Recent(n int) []models.Sale {
	if n <= 0 {
		return []models.Sale{}
	}
	if n > len(j.sales) {
		n = len(j.sales)
	}
	out := make([]models.Sale, 0, n)
	for i := len(j.sales) - 1; i >= len(j.sales)-n; i-- {
		out = append(out, j.sales[i])
	}
	return out
}

// DailyTotal sums the sales made on the same calendar day as ref, in ref's
// location.
func (j *Journal) DailyTotal(ref time.Time) decimal.Decimal {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return j.sumBetween(start, start.AddDate(0, 0, 1))
}

// MonthlyTotal sums the sales made in the same calendar month as ref, in
// ref's location.
func (j *Journal) MonthlyTotal(ref time.Time) decimal.Decimal {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return j.sumBetween(start, start.AddDate(0, 1, 0))
}

// Snapshot returns the sales for persistence.
func (j *Journal) Snapshot() []models.Sale {
	return j.All()
}

// Restore replaces the history with sales.
func (j *Journal) Restore(sales []models.Sale) {
	j.sales = make([]models.Sale, len(sales))
	copy(j.sales, sales)
}

// sumBetween sums sales with start <= timestamp < end.
func (j *Journal) sumBetween(start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range j.sales {
		if sale.Timestamp.Before(start) || !sale.Timestamp.Before(end) {
			continue
		}
		total = total.Add(sale.Amount)
	}
	return total
}
