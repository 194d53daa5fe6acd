package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type WidgetMetricsCollector struct {
	FetchRequests        *prometheus.CounterVec
	FetchDuration        *prometheus.HistogramVec
	NotificationsSent    *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	SchedulerSkips       prometheus.Counter
}

var globalCollector *WidgetMetricsCollector

func getCollector() *WidgetMetricsCollector {
	if globalCollector == nil {
		globalCollector = &WidgetMetricsCollector{
			FetchRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "widget_weather_fetch_requests_total",
					Help: "The total number of weather fetch requests",
				},
				[]string{"region", "outcome"},
			),
			FetchDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "widget_weather_fetch_duration_seconds",
					Help:    "Weather fetch duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"region"},
			),
			NotificationsSent: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "widget_notifications_sent_total",
					Help: "The total number of desktop notifications sent",
				},
				[]string{"source"},
			),
			NotificationFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "widget_notification_failures_total",
					Help: "The total number of failed notification deliveries",
				},
				[]string{"source"},
			),
			SchedulerSkips: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "widget_scheduler_skips_total",
					Help: "Boundary wakeups skipped because notifications were disabled or the boundary re-check failed",
				},
			),
		}
	}
	return globalCollector
}

// FetchMetrics records weather fetch outcomes and latency
type FetchMetrics struct {
	collector *WidgetMetricsCollector
}

func NewFetchMetrics() *FetchMetrics {
	return &FetchMetrics{collector: getCollector()}
}

func (m *FetchMetrics) RecordFetch(region, outcome string, duration float64) {
	m.collector.FetchRequests.WithLabelValues(region, outcome).Inc()
	m.collector.FetchDuration.WithLabelValues(region).Observe(duration)
}

// NotificationMetrics records notification deliveries per source
// ("api" or "scheduler")
type NotificationMetrics struct {
	source    string
	collector *WidgetMetricsCollector
}

func NewNotificationMetrics(source string) *NotificationMetrics {
	return &NotificationMetrics{
		source:    source,
		collector: getCollector(),
	}
}

func (m *NotificationMetrics) RecordSent() {
	m.collector.NotificationsSent.WithLabelValues(m.source).Inc()
}

func (m *NotificationMetrics) RecordFailure() {
	m.collector.NotificationFailures.WithLabelValues(m.source).Inc()
}

func (m *NotificationMetrics) RecordSkip() {
	m.collector.SchedulerSkips.Inc()
}
