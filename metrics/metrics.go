// Package metrics exposes Prometheus collectors for invoice generation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InvoicesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicegen_invoices_generated_total",
		Help: "Invoices rendered, by document format.",
	}, []string{"format"})

	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invoicegen_validation_failures_total",
		Help: "Invoice requests rejected by line-item validation.",
	})

	RenderSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invoicegen_render_seconds",
		Help:    "Time spent filling the document template.",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})
)
