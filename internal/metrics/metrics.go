// Package metrics exposes Prometheus instruments for the point of sale.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

const namespace = "adisyon"

// Metrics holds the instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	OrdersPlaced    prometheus.Counter
	OrdersCancelled prometheus.Counter
	BillsClosed     *prometheus.CounterVec
	Revenue         prometheus.Counter
	TablesOccupied  prometheus.Gauge
	RPCRequests     *prometheus.CounterVec
}

// New creates the instruments on a fresh registry, including Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Order lines placed on tables.",
		}),
		OrdersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "Order lines removed from tables.",
		}),
		BillsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_closed_total",
			Help:      "Bills closed with a recorded sale, by payment method.",
		}, []string{"payment_method"}),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Sum of recorded sale amounts.",
		}),
		TablesOccupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tables_occupied",
			Help:      "Tables with an open tab.",
		}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.OrdersPlaced,
		m.OrdersCancelled,
		m.BillsClosed,
		m.Revenue,
		m.TablesOccupied,
		m.RPCRequests,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// OrderPlaced counts a placed order line and updates the occupied-table gauge.
func (m *Metrics) OrderPlaced(occupied int) {
	if m == nil {
		return
	}
	m.OrdersPlaced.Inc()
	m.TablesOccupied.Set(float64(occupied))
}

// OrderCancelled counts a cancelled order line and updates the occupied-table gauge.
func (m *Metrics) OrderCancelled(occupied int) {
	if m == nil {
		return
	}
	m.OrdersCancelled.Inc()
	m.TablesOccupied.Set(float64(occupied))
}

// BillClosed records a closed bill. A nil sale only updates the occupancy gauge.
func (m *Metrics) BillClosed(sale *models.Sale, occupied int) {
	if m == nil {
		return
	}
	m.TablesOccupied.Set(float64(occupied))
	if sale == nil {
		return
	}
	m.BillsClosed.WithLabelValues(string(sale.PaymentMethod)).Inc()
	m.Revenue.Add(toFloat(sale.Amount))
}

// RPC counts one call.
func (m *Metrics) RPC(procedure, code string) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
