package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Circulation counts ledger and hold-queue events. A nil value is a no-op.
type Circulation struct {
	loans     *prometheus.CounterVec
	holds     *prometheus.CounterVec
	fineTotal prometheus.Counter
}

func NewCirculation(reg prometheus.Registerer) *Circulation {
	if reg == nil {
		return &Circulation{}
	}
	loans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libralite",
		Name:      "loan_events_total",
		Help:      "Loan events by kind (checkout, checkin, overdue).",
	}, []string{"event"})
	holds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libralite",
		Name:      "hold_events_total",
		Help:      "Hold transitions by resulting status.",
	}, []string{"status"})
	fineTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "libralite",
		Name:      "fines_assessed_amount_total",
		Help:      "Sum of late fees assessed.",
	})
	reg.MustRegister(loans, holds, fineTotal)
	return &Circulation{loans: loans, holds: holds, fineTotal: fineTotal}
}

func (c *Circulation) LoanEvent(event string) {
	if c == nil || c.loans == nil {
		return
	}
	c.loans.WithLabelValues(normalizeLabel(event)).Inc()
}

func (c *Circulation) HoldEvent(status string) {
	c.HoldEvents(status, 1)
}

func (c *Circulation) HoldEvents(status string, n int) {
	if c == nil || c.holds == nil || n <= 0 {
		return
	}
	c.holds.WithLabelValues(normalizeLabel(status)).Add(float64(n))
}

func (c *Circulation) FineAssessed(amount decimal.Decimal) {
	if c == nil || c.fineTotal == nil {
		return
	}
	c.fineTotal.Add(amount.InexactFloat64())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
