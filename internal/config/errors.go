// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import "errors"

var (
	// ErrUnknownConfigField classifies strict YAML parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrUnsupportedFormat is returned for config files that are not YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidLevel classifies unknown log level names.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat classifies unknown sink output formats.
	ErrInvalidFormat = errors.New("invalid sink format")

	// ErrEmptySinkName is returned when the sink name is blank.
	ErrEmptySinkName = errors.New("sink name is empty")

	// ErrInvalidSinkName classifies sink names with forbidden characters.
	ErrInvalidSinkName = errors.New("invalid sink name")
)
