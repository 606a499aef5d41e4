// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/SheldonNico/templates/internal/log"
	"github.com/SheldonNico/templates/internal/validate"
)

// Validate validates a Config using the centralized validation package.
func Validate(cfg Config) error {
	v := validate.New()

	v.LogLevel(ErrInvalidLevel, "log.level", cfg.Log.Level)

	v.NotEmpty(ErrEmptySinkName, "sink.name", cfg.Sink.Name)
	v.Identifier(ErrInvalidSinkName, "sink.name", cfg.Sink.Name)
	v.OneOf(ErrInvalidFormat, "sink.format", cfg.Sink.Format,
		[]string{string(log.FormatConsole), string(log.FormatJSON)})

	return v.Err()
}
