// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/SheldonNico/templates/internal/log"
)

// Environment variable names read by Load.
const (
	EnvConfigPath = "LIBSCALE_CONFIG"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogService = "LOG_SERVICE"
	EnvSinkName   = "LIBSCALE_SINK_NAME"
	EnvSinkFormat = "LIBSCALE_LOG_FORMAT"
	EnvSinkColor  = "LIBSCALE_LOG_COLOR"
)

// DefaultSinkName is the name of the diagnostic sink used by the C export.
const DefaultSinkName = "console"

// Config is the effective libscale configuration.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Sink SinkConfig `yaml:"sink"`
}

// LogConfig configures the base zerolog logger.
type LogConfig struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// SinkConfig configures the named diagnostic sink.
type SinkConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	color := true
	return Config{
		Log: LogConfig{
			Level:   "info",
			Service: "libscale",
		},
		Sink: SinkConfig{
			Name:   DefaultSinkName,
			Format: string(log.FormatConsole),
			Color:  &color,
		},
	}
}

// ColorEnabled reports whether the console sink should colourise output.
func (s SinkConfig) ColorEnabled() bool {
	return s.Color == nil || *s.Color
}

// SinkOptions translates the sink section into log.SinkOptions.
func (c Config) SinkOptions() log.SinkOptions {
	return log.SinkOptions{
		Format: log.Format(c.Sink.Format),
		Color:  c.Sink.ColorEnabled(),
	}
}

// LoggerConfig translates the log section into log.Config.
func (c Config) LoggerConfig() log.Config {
	return log.Config{
		Level:   c.Log.Level,
		Service: c.Log.Service,
	}
}
