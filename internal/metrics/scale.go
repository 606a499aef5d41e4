// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package metrics provides Prometheus metrics for the scaling function.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal counts calls to the scaling function.
	EvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libscale_evaluations_total",
		Help: "Total number of scaling function evaluations.",
	})

	// WrappedResultsTotal counts evaluations whose result overflowed int32 and wrapped.
	WrappedResultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libscale_wrapped_results_total",
		Help: "Total number of evaluations whose result wrapped around the int32 range.",
	})
)

// RecordEvaluation records one evaluation.
func RecordEvaluation(wrapped bool) {
	EvaluationsTotal.Inc()
	if wrapped {
		WrappedResultsTotal.Inc()
	}
}
