package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the game economy collectors.
	Registry = prometheus.NewRegistry()

	ledgerOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cocosforest",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations by direction, reason and outcome.",
		},
		[]string{"direction", "reason", "outcome"},
	)

	ledgerPoints = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cocosforest",
			Subsystem: "ledger",
			Name:      "points_total",
			Help:      "Points moved through the ledger.",
		},
		[]string{"direction", "reason"},
	)

	evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cocosforest",
			Subsystem: "challenges",
			Name:      "evaluations_total",
			Help:      "Challenge evaluations by metric type and verdict.",
		},
		[]string{"metric", "verdict"},
	)

	settlement = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cocosforest",
			Subsystem: "settlement",
			Name:      "instances_total",
			Help:      "Challenge instances handled by the daily settlement.",
		},
		[]string{"result"},
	)

	batchRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cocosforest",
			Subsystem: "lifecycle",
			Name:      "phase_rows_total",
			Help:      "Rows touched by each phase of the plant lifecycle batch.",
		},
		[]string{"phase"},
	)

	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cocosforest",
			Subsystem: "scheduler",
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled jobs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"job", "success"},
	)
)

func init() {
	Registry.MustRegister(
		ledgerOps,
		ledgerPoints,
		evaluations,
		settlement,
		batchRows,
		jobDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordLedger counts one ledger call; points are added only on success.
func RecordLedger(direction, reason, outcome string, amount int64) {
	ledgerOps.WithLabelValues(direction, reason, outcome).Inc()
	if outcome == "ok" {
		ledgerPoints.WithLabelValues(direction, reason).Add(float64(amount))
	}
}

func RecordEvaluation(metric, verdict string) {
	if metric == "" {
		metric = "NONE"
	}
	evaluations.WithLabelValues(metric, verdict).Inc()
}

func RecordSettlement(result string, n int) {
	settlement.WithLabelValues(result).Add(float64(n))
}

func RecordPhase(phase string, rows int64) {
	batchRows.WithLabelValues(phase).Add(float64(rows))
}

func ObserveJob(job string, started time.Time, err error) {
	success := "true"
	if err != nil {
		success = "false"
	}
	jobDuration.WithLabelValues(job, success).Observe(time.Since(started).Seconds())
}
