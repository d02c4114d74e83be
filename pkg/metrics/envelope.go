package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// EnvelopeMetrics counts envelopes handed to transports.
type EnvelopeMetrics struct {
	written   *prometheus.CounterVec
	contracts prometheus.Counter
}

// NewEnvelopeMetrics registers the envelope metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewEnvelopeMetrics(reg prometheus.Registerer) *EnvelopeMetrics {
	if reg == nil {
		return &EnvelopeMetrics{}
	}
	written := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "envelopes_written_total",
		Help: "Response envelopes written, by variant and status.",
	}, []string{"variant", "status"})
	contracts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "envelope_contract_violations_total",
		Help: "Envelope builds rejected because the call itself was invalid.",
	})
	reg.MustRegister(written, contracts)
	return &EnvelopeMetrics{
		written:   written,
		contracts: contracts,
	}
}

// IncWritten counts one written envelope.
func (m *EnvelopeMetrics) IncWritten(variant string, status int) {
	if m == nil || m.written == nil {
		return
	}
	m.written.WithLabelValues(normalizeLabel(variant), strconv.Itoa(status)).Inc()
}

// IncContractViolation counts one rejected build.
func (m *EnvelopeMetrics) IncContractViolation() {
	if m == nil || m.contracts == nil {
		return
	}
	m.contracts.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
