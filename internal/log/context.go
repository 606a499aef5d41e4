// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package log provides structured logging utilities and named diagnostic sinks.
package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	sinkKey   ctxKey = "sink"
	callIDKey ctxKey = "call_id"
)

// ContextWithSink stores sink in the context.
func ContextWithSink(ctx context.Context, sink Sink) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sinkKey, sink)
}

// SinkFromContext returns the sink stored in ctx, if any.
func SinkFromContext(ctx context.Context) (Sink, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sinkKey).(Sink)
	return s, ok && s != nil
}

// ContextWithCallID stores an identifier for the current call chain.
func ContextWithCallID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callIDKey, id)
}

// CallIDFromContext extracts the call ID from context if present.
func CallIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(callIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext enriches the supplied logger with fields from context.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if cid := CallIDFromContext(ctx); cid != "" {
		return logger.With().Str(string(callIDKey), cid).Logger()
	}
	return logger
}
