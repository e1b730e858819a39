package metrics

import "github.com/prometheus/client_golang/prometheus"

// Check outcome labels.
const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
	OutcomeError  = "error"
)

// ChecksTotal counts comparison engine calls by operation and outcome.
var ChecksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "keycheck",
		Name:      "checks_total",
		Help:      "Total number of keyspace checks by operation and outcome",
	},
	[]string{"op", "outcome"},
)

// RegisterCheckMetrics registers check metrics explicitly (no init()),
// so library consumers that never construct the instrumented engine do not
// pollute the default registry.
func RegisterCheckMetrics() {
	prometheus.MustRegister(ChecksTotal)
}
