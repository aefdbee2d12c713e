package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the storefront counters.
type Metrics struct {
	cartMutations *prometheus.CounterVec

	ordersCreated prometheus.Counter
	ordersFailed  prometheus.Counter

	checkoutDuration prometheus.Histogram
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer exists so tests can use an isolated registry.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tunitest_cart_mutations_total",
			Help: "Total number of cart mutations by operation",
		}, []string{"op"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tunitest_orders_created_total",
			Help: "Total number of orders accepted",
		}),
		ordersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tunitest_orders_failed_total",
			Help: "Total number of order submissions rejected or failed",
		}),
		checkoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tunitest_checkout_duration_seconds",
			Help:    "Duration of checkout submissions in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registerer.MustRegister(m.cartMutations, m.ordersCreated, m.ordersFailed, m.checkoutDuration)
	return m
}

func (m *Metrics) CartMutation(op string) {
	m.cartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) OrderCreated() { m.ordersCreated.Inc() }
func (m *Metrics) OrderFailed()  { m.ordersFailed.Inc() }

func (m *Metrics) ObserveCheckout(seconds float64) {
	m.checkoutDuration.Observe(seconds)
}
