// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldSink      = "sink"

	// Computation fields
	FieldInput   = "input"
	FieldResult  = "result"
	FieldWrapped = "wrapped"

	// Config fields
	FieldKey    = "key"
	FieldSource = "source"
	FieldPath   = "path"
)
