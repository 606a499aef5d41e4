// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SheldonNico/templates/internal/log"
	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides. The result
// is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
		mergeFile(&cfg, fileCfg)
		logger := log.WithComponent("config")
		logger.Debug().
			Str(log.FieldPath, path).
			Msg("configuration file loaded")
	}

	mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by LIBSCALE_CONFIG, if set.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func loadFile(path string) (*Config, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s (only YAML supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFile(dst *Config, src *Config) {
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Service != "" {
		dst.Log.Service = src.Log.Service
	}
	if src.Sink.Name != "" {
		dst.Sink.Name = src.Sink.Name
	}
	if src.Sink.Format != "" {
		dst.Sink.Format = src.Sink.Format
	}
	if src.Sink.Color != nil {
		color := *src.Sink.Color
		dst.Sink.Color = &color
	}
}

func mergeEnv(dst *Config) {
	dst.Log.Level = strings.ToLower(ParseString(EnvLogLevel, dst.Log.Level))
	dst.Log.Service = ParseString(EnvLogService, dst.Log.Service)
	dst.Sink.Name = ParseString(EnvSinkName, dst.Sink.Name)
	dst.Sink.Format = strings.ToLower(ParseString(EnvSinkFormat, dst.Sink.Format))
	color := ParseBool(EnvSinkColor, dst.Sink.ColorEnabled())
	dst.Sink.Color = &color
}
