package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Cheertaboi/storefront-service/internal/notify"
)

func TestObserveBus(t *testing.T) {
	m := New(prometheus.NewRegistry())
	bus := notify.NewBus()
	m.ObserveBus(bus)

	bus.NotifyCartChanged("a")
	bus.NotifyCartChanged("b")
	bus.NotifySessionChanged("a")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Notifications.WithLabelValues(string(notify.CartChanged))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues(string(notify.SessionChanged))))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncOrdersSubmitted()
		m.IncOrdersFailed()
		m.ObserveBackend("GET /api/menus/{id}", 200, time.Millisecond)
	})
}

func TestOrderCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncOrdersSubmitted()
	m.IncOrdersFailed()
	m.IncOrdersFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersSubmitted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersFailed))
}
