package services

import "github.com/prometheus/client_golang/prometheus"

var (
	sweepRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mllifecycle",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Total number of teardown sweeps by result",
		},
		[]string{"result"},
	)

	sweepResourcesDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mllifecycle",
			Subsystem: "sweep",
			Name:      "resources_deleted_total",
			Help:      "Platform resources deleted by the sweep, by kind",
		},
		[]string{"kind"},
	)

	sweepPollRounds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mllifecycle",
			Subsystem: "sweep",
			Name:      "poll_rounds_total",
			Help:      "Polling rounds spent waiting on delete operations",
		},
	)

	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mllifecycle",
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Duration of a full teardown sweep in seconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~1h
		},
	)

	trainingJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mllifecycle",
			Subsystem: "training",
			Name:      "jobs_total",
			Help:      "Training jobs observed reaching a terminal state",
		},
		[]string{"state"},
	)
)

func init() {
	prometheus.MustRegister(
		sweepRunsTotal,
		sweepResourcesDeleted,
		sweepPollRounds,
		sweepDuration,
		trainingJobsTotal,
	)
}
