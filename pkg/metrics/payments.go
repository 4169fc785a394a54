package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics counts joining fees charged.
type PaymentMetrics struct {
	charged *prometheus.CounterVec
	amount  prometheus.Counter
}

// NewPaymentMetrics registers the payment metrics on the provided registerer.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	charged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "joining_fees_charged_total",
		Help: "Mock joining fee payments by fee tier.",
	}, []string{"fee"})
	amount := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "joining_fees_amount_total",
		Help: "Sum of joining fees charged, in rupees.",
	})
	reg.MustRegister(charged, amount)
	return &PaymentMetrics{charged: charged, amount: amount}
}

// ObserveFee records one charge of fee rupees.
func (p *PaymentMetrics) ObserveFee(fee int64) {
	if p == nil || p.charged == nil {
		return
	}
	p.charged.WithLabelValues(strconv.FormatInt(fee, 10)).Inc()
	p.amount.Add(float64(fee))
}
