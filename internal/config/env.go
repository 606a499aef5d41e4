// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"strings"

	"github.com/SheldonNico/templates/internal/log"
	"github.com/rs/zerolog"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str(log.FieldKey, key).
				Str("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str(log.FieldKey, key).
			Str("value", value).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Str("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}

// ParseBool reads a boolean from environment variable or returns default value.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	logger := log.WithComponent("config")
	if v, ok := os.LookupEnv(key); ok {
		if v == "" {
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("value", true).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return true
		case "false", "0", "no":
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("value", false).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return false
		default:
			logger.Warn().
				Str(log.FieldKey, key).
				Str("value", v).
				Bool("default", defaultValue).
				Msg("invalid boolean in environment variable, using default")
			return defaultValue
		}
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Bool("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}
