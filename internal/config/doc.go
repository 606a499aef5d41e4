// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config loads libscale settings from an optional YAML file and the
// process environment. Environment variables win over the file; the file wins
// over built-in defaults.
package config
