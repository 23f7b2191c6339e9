// Package metrics exposes Prometheus collectors for query and API activity,
// fed through the same lifecycle hooks the debug logger uses.
package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/marquee/pkg/domain"
)

// Metrics holds the collector set for one process.
type Metrics struct {
	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	apiRequests   *prometheus.CounterVec
	apiDuration   *prometheus.HistogramVec
}

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marquee_queries_total",
				Help: "Total number of resolved queries by result kind",
			},
			[]string{"kind"},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "marquee_query_duration_seconds",
				Help: "Duration of query resolution including API calls",
			},
		),
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marquee_api_requests_total",
				Help: "Total number of TMDB API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		apiDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "marquee_api_request_duration_seconds",
				Help: "Duration of TMDB API requests by endpoint",
			},
			[]string{"endpoint"},
		),
	}

	reg.MustRegister(m.queries, m.queryDuration, m.apiRequests, m.apiDuration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQueryEnd: func(_ context.Context, e *domain.QueryEvent) {
			m.queries.WithLabelValues(string(e.Kind)).Inc()
			m.queryDuration.Observe(e.Duration.Seconds())
		},
		OnAPIReturn: func(_ context.Context, e *domain.APIEvent) {
			m.apiRequests.WithLabelValues(e.Endpoint, strconv.Itoa(e.Status)).Inc()
			m.apiDuration.WithLabelValues(e.Endpoint).Observe(e.Duration.Seconds())
		},
	}
}
