// Package telemetry holds the Prometheus business metrics for the storefront.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds the counters and histograms the dashboards read.
type BusinessMetrics struct {
	// Catalog engagement
	CatalogSearches *prometheus.CounterVec
	ProductViews    *prometheus.CounterVec

	// Cart
	CartItemsAdded *prometheus.CounterVec
	CartValue      prometheus.Histogram

	// Orders
	OrdersCreated prometheus.Counter
	OrderValue    prometheus.Histogram

	// Vouchers
	VoucherRedemptions prometheus.Counter
	VoucherRejections  *prometheus.CounterVec

	// Contact
	ContactMessages prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "atelier"
	}

	subsystem := "business"

	return &BusinessMetrics{
		CatalogSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_searches_total",
				Help:      "Total catalog list requests, by dominant filter",
			},
			[]string{"filter"}, // filter: search, category, brand, price, type, none
		),
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total product detail views",
			},
			[]string{"product_type"},
		),
		CartItemsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total add to cart actions",
			},
			[]string{"product_type"},
		),
		CartValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value_rupiah",
				Help:      "Cart subtotal at checkout time, in rupiah",
				Buckets:   prometheus.ExponentialBuckets(50_000, 2, 10),
			},
		),
		OrdersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total orders created",
			},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_rupiah",
				Help:      "Order total after discounts, in rupiah",
				Buckets:   prometheus.ExponentialBuckets(50_000, 2, 10),
			},
		),
		VoucherRedemptions: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "voucher_redemptions_total",
				Help:      "Total successful voucher redemptions",
			},
		),
		VoucherRejections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "voucher_rejections_total",
				Help:      "Total rejected voucher applications, by reason",
			},
			[]string{"reason"},
		),
		ContactMessages: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "contact_messages_total",
				Help:      "Total contact form submissions",
			},
		),
	}
}
