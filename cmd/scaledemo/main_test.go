// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SheldonNico/templates/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvConfigPath, config.EnvLogLevel, config.EnvSinkName, config.EnvSinkFormat, config.EnvSinkColor} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRun_Default(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-input", "3"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Function is evaluated.\n")
	assert.Contains(t, out, "hello from external library.")
	assert.Contains(t, out, "return to go 3 * 4 = 12\n")

	evaluated := strings.Index(out, "Function is evaluated.")
	diag := strings.Index(out, "hello from external library.")
	result := strings.Index(out, "return to go")
	assert.Less(t, evaluated, diag)
	assert.Less(t, diag, result)
}

func TestRun_RepeatCount(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-input", "-5", "-n", "3"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, 3, strings.Count(stdout.String(), "Function is evaluated."))
	assert.Equal(t, 3, strings.Count(stdout.String(), "hello from external library."))
	assert.Equal(t, 3, strings.Count(stdout.String(), "return to go -5 * 4 = -20"))
}

func TestRun_JSONSinkFromConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "libscale.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sink:\n  name: diag\n  format: json\n"), 0o600))
	var stdout, stderr bytes.Buffer

	code := run([]string{"-config", path, "-input", "2147483647"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"sink":"diag"`)
	assert.Contains(t, stdout.String(), `"level":"error"`)
	assert.Contains(t, stdout.String(), "return to go 2147483647 * 4 = -4")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "bad flag", args: []string{"-nope"}, want: 2},
		{name: "zero count", args: []string{"-n", "0"}, want: 2},
		{name: "input too large", args: []string{"-input", "2147483648"}, want: 2},
		{name: "input too small", args: []string{"-input", "-2147483649"}, want: 2},
		{name: "missing config", args: []string{"-config", "/does/not/exist.yaml"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.want, code)
			assert.NotContains(t, stdout.String(), "return to go")
		})
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "commit:")
}
