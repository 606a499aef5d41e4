// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package scale

import (
	"context"
	"io"
	"os"

	"github.com/SheldonNico/templates/internal/log"
	"github.com/SheldonNico/templates/internal/metrics"
	"github.com/rs/zerolog"
)

const (
	// EvaluatedLine is written to the informational stream on every call.
	EvaluatedLine = "Function is evaluated.\n"
	// DiagnosticMessage is logged at error level on every call.
	DiagnosticMessage = "hello from external library."
)

// Evaluator quadruples its input and reports each call. The zero value writes
// to os.Stdout and logs nowhere.
type Evaluator struct {
	// Stdout receives one informational line per call. Nil means os.Stdout.
	Stdout io.Writer
	// Sink receives one error-level message per call. Nil means log.Nop.
	Sink log.Sink
}

// NewEvaluator returns an evaluator bound to stdout and sink.
func NewEvaluator(stdout io.Writer, sink log.Sink) *Evaluator {
	return &Evaluator{Stdout: stdout, Sink: sink}
}

// Evaluate writes the informational line, logs the diagnostic message and
// returns Quadruple(x). It never fails; write errors are dropped.
func (e *Evaluator) Evaluate(x int32) int32 {
	return e.evaluate(e.sink(), x)
}

// EvaluateContext is Evaluate with the sink taken from ctx when one was
// stored with log.ContextWithSink.
func (e *Evaluator) EvaluateContext(ctx context.Context, x int32) int32 {
	sink, ok := log.SinkFromContext(ctx)
	if !ok {
		sink = e.sink()
	}
	return e.evaluate(sink, x)
}

func (e *Evaluator) evaluate(sink log.Sink, x int32) int32 {
	_, _ = io.WriteString(e.stdout(), EvaluatedLine)
	sink.Log(zerolog.ErrorLevel, DiagnosticMessage)

	wrapped := Overflows(x)
	metrics.RecordEvaluation(wrapped)
	return Quadruple(x)
}

func (e *Evaluator) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *Evaluator) sink() log.Sink {
	if e.Sink == nil {
		return log.Nop
	}
	return e.Sink
}
