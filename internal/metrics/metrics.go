package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	UsersCreated      prometheus.Counter
	ItemsForgotten    prometheus.Counter
	StreakIncrements  prometheus.Counter
	StreakResets      prometheus.Counter
	RequestsDurations *prometheus.HistogramVec
}

// New creates the metrics on a fresh registry, so several instances can live in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "forgetmenot_users_created_total",
			Help: "Total number of users signed up",
		}),
		ItemsForgotten: factory.NewCounter(prometheus.CounterOpts{
			Name: "forgetmenot_items_forgotten_total",
			Help: "Total number of items reported as forgotten",
		}),
		StreakIncrements: factory.NewCounter(prometheus.CounterOpts{
			Name: "forgetmenot_streak_increments_total",
			Help: "Total number of streak increments",
		}),
		StreakResets: factory.NewCounter(prometheus.CounterOpts{
			Name: "forgetmenot_streak_resets_total",
			Help: "Total number of streaks reset by forgetting something",
		}),
		RequestsDurations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forgetmenot_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

// ObserveForgotten records one streak reset and n forgotten items.
func (m *Metrics) ObserveForgotten(n int) {
	m.StreakResets.Inc()
	m.ItemsForgotten.Add(float64(n))
}

func (m *Metrics) IncrementStreak() {
	m.StreakIncrements.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.RequestsDurations.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
