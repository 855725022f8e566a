package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus метрики worker'а.
//
// Экспортируются на /metrics endpoint worker-процесса.
var (
	// ClassifiersClaimed — количество classifier'ов, закреплённых за worker'ом.
	ClassifiersClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "classifiers_claimed_total",
		Help:      "Number of classifiers claimed from core-service.",
	})

	// ClassifiersCompleted — успешно завершённые classifier'ы.
	ClassifiersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "classifiers_completed_total",
		Help:      "Number of classifiers completed and uploaded.",
	})

	// ClassifiersFailed — classifier'ы, помеченные failed.
	ClassifiersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "classifiers_failed_total",
		Help:      "Number of classifiers marked failed.",
	})

	// ClassifiersReleased — classifier'ы, возвращённые в пул при shutdown.
	ClassifiersReleased = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "classifiers_released_total",
		Help:      "Number of classifiers released back to core-service.",
	})

	// AcquirePolls — опросы core-service, по результату: "claimed" или "empty".
	AcquirePolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "acquire_polls_total",
		Help:      "Number of core-service polls by outcome.",
	}, []string{"outcome"})

	// StageDuration — длительность выполнения stage'ей по имени.
	// Buckets подобраны под долгие notebook-вычисления.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "genomix",
		Subsystem: "worker",
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of pipeline stage executions.",
		Buckets:   []float64{1, 10, 30, 60, 300, 600, 1800, 3600, 7200},
	}, []string{"stage"})
)
