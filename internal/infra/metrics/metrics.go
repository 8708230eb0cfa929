package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the engine's operational counters.
type Collector struct {
	quotes             prometheus.Counter
	validationFailures *prometheus.CounterVec
	commits            prometheus.Counter
	commitConflicts    prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		quotes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_quotes_total",
			Help: "Number of price quotes computed.",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_validation_failures_total",
			Help: "Number of reservation requests rejected by validation, by reason.",
		}, []string{"reason"}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_reservations_committed_total",
			Help: "Number of reservations committed.",
		}),
		commitConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_commit_conflicts_total",
			Help: "Number of commits lost to a concurrent reservation.",
		}),
	}
	reg.MustRegister(c.quotes, c.validationFailures, c.commits, c.commitConflicts)
	return c
}

func (c *Collector) QuoteComputed() {
	c.quotes.Inc()
}

func (c *Collector) ValidationFailed(reason string) {
	c.validationFailures.WithLabelValues(reason).Inc()
}

func (c *Collector) ReservationCommitted() {
	c.commits.Inc()
}

func (c *Collector) CommitConflict() {
	c.commitConflicts.Inc()
}
