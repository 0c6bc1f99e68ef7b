package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Cheertaboi/storefront-service/internal/notify"
)

// Metrics holds the storefront's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Notifications   *prometheus.CounterVec
	OrdersSubmitted prometheus.Counter
	OrdersFailed    prometheus.Counter
	BackendRequests *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_notifications_total",
			Help: "Cart and session change notifications published",
		}, []string{"signal"}),
		OrdersSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_submitted_total",
			Help: "Orders accepted by the backend",
		}),
		OrdersFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_failed_total",
			Help: "Order submissions rejected by validation or the backend",
		}),
		BackendRequests: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_backend_request_duration_seconds",
			Help:    "Backend API call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
	}
}

// ObserveBus counts every signal published on bus.
func (m *Metrics) ObserveBus(bus *notify.Bus) (unsubscribe func()) {
	return bus.SubscribeAll(func(e notify.Event) {
		m.Notifications.WithLabelValues(string(e.Signal)).Inc()
	})
}

func (m *Metrics) IncOrdersSubmitted() {
	if m == nil {
		return
	}
	m.OrdersSubmitted.Inc()
}

func (m *Metrics) IncOrdersFailed() {
	if m == nil {
		return
	}
	m.OrdersFailed.Inc()
}

// ObserveBackend records one backend call. status 0 means the request never
// got a response.
func (m *Metrics) ObserveBackend(endpoint string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Observe(d.Seconds())
}
