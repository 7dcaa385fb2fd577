// Package metrics defines Prometheus metrics for the inventory server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ChangesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_item_changes_recorded_total",
			Help: "Total audit records written for item field changes",
		},
	)

	ItemCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_items_total",
			Help: "Total item count",
		},
	)

	CategoryCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_categories_total",
			Help: "Total category count",
		},
	)

	LowStockCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_low_stock_items",
			Help: "Items below the low-stock threshold",
		},
	)

	InventoryValue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_value",
			Help: "Total value of stock on hand",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ChangesRecorded,
		ItemCount, CategoryCount, LowStockCount, InventoryValue,
	)
}
