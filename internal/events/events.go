// Package events publishes café domain events to RabbitMQ.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

const (
	// Exchange is the topic exchange all café events go to.
	Exchange = "cafe_events"

	// SaleRecordedKey is the routing key for closed bills.
	SaleRecordedKey = "sale.recorded"
)

// Publisher sends domain events to interested consumers.
type Publisher interface {
	PublishSale(ctx context.Context, event SaleRecorded) error
	Close() error
}

// SaleRecorded is emitted when a bill is closed with a positive total.
type SaleRecorded struct {
	SaleID        string               `json:"sale_id"`
	TableID       int                  `json:"table_id"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	LineCount     int                  `json:"line_count"`
	Timestamp     time.Time            `json:"timestamp"`
}

// NewSaleRecorded builds the event for a sale closed on table.
func NewSaleRecorded(sale models.Sale, table models.Table) SaleRecorded {
	return SaleRecorded{
		SaleID:        sale.ID,
		TableID:       table.ID,
		Amount:        sale.Amount,
		PaymentMethod: sale.PaymentMethod,
		LineCount:     len(table.Orders),
		Timestamp:     sale.Timestamp,
	}
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSale(context.Context, SaleRecorded) error { return nil }
func (NopPublisher) Close() error                                    { return nil }
