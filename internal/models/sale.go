package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a bill was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Sale is an immutable record of a closed bill.
type Sale struct {
	// ID is the unique identifier for the sale (UUID format).
	ID string `json:"id"`

	// Amount is the bill total at closing time. Always positive.
	Amount decimal.Decimal `json:"amount"`

	// Timestamp is when the bill was closed.
	Timestamp time.Time `json:"timestamp"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// RevenueSummary holds the figures shown on the admin dashboard.
type RevenueSummary struct {
	// Daily is the revenue for the calendar day of the reference time.
	Daily decimal.Decimal

	// Monthly is the revenue for the calendar month of the reference time.
	Monthly decimal.Decimal

	MenuItemCount int
	SaleCount     int
}
