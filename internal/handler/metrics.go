package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	deliveryEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "delivery_events_processed_total",
			Help:      "Total number of successfully applied delivery events",
		},
	)

	deliveryEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "delivery_events_failed_total",
			Help:      "Total number of delivery events that could not be applied",
		},
	)

	deliveryEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "delivery_events_dlq_total",
			Help:      "Total number of delivery events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	deliveryEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "delivery_event_duration_seconds",
			Help:      "Histogram of delivery event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	deliveryEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront_checkout",
			Subsystem: "kafka_consumer",
			Name:      "delivery_events_in_progress",
			Help:      "Number of delivery events currently being processed",
		},
	)
)

var (
	checkoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "http",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront_checkout",
			Subsystem: "http",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront_checkout",
			Subsystem: "http",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkouts currently being processed",
		},
	)

	trackRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_checkout",
			Subsystem: "http",
			Name:      "track_requests_total",
			Help:      "Total number of order tracking lookups",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		deliveryEventsProcessed,
		deliveryEventsFailed,
		deliveryEventsDLQ,
		commitErrors,
		deliveryEventDuration,
		deliveryEventsInProgress,

		checkoutTotal,
		checkoutDuration,
		checkoutsInProgress,
		trackRequestTotal,
	)
}
