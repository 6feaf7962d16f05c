package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the machine's prometheus collectors.
type Metrics struct {
	Sales       *prometheus.CounterVec
	Revenue     prometheus.Counter
	Underfunded *prometheus.CounterVec
	Directives  *prometheus.CounterVec
	Refunds     prometheus.Counter
	Refills     *prometheus.CounterVec
	Resets      prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sales: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vending_sales_total",
				Help: "Total number of items sold",
			},
			[]string{"item"},
		),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vending_revenue_dollars_total",
			Help: "Sum of item prices sold, in dollars",
		}),
		Underfunded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vending_underfunded_total",
				Help: "Purchase attempts rejected for insufficient balance",
			},
			[]string{"item"},
		),
		Directives: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vending_directives_total",
				Help: "Recovery choices made after an underfunded attempt",
			},
			[]string{"directive"},
		),
		Refunds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vending_refunds_total",
			Help: "Canceled transactions",
		}),
		Refills: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vending_refills_total",
				Help: "Administrative refills by kind (restock or new)",
			},
			[]string{"kind"},
		),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vending_resets_total",
			Help: "Administrative machine resets",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Sales, m.Revenue, m.Underfunded, m.Directives, m.Refunds, m.Refills, m.Resets)
	}
	return m
}
