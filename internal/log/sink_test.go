// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink("console", SinkOptions{Output: &buf, Format: FormatJSON})

	s.Log(zerolog.ErrorLevel, "hello from external library.")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "console", entry[FieldSink])
	assert.Equal(t, "hello from external library.", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "console", s.Name())
}

func TestConsoleSink_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink("console", SinkOptions{Output: &buf, Format: FormatConsole})

	s.Log(zerolog.ErrorLevel, "boom")

	out := buf.String()
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "sink=console")
	assert.NotContains(t, out, "\x1b[", "color disabled by default")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestConsoleSink_Color(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	s := NewConsoleSink("console", SinkOptions{Output: &buf, Color: true})

	s.Log(zerolog.ErrorLevel, "boom")

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestConsoleSink_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink("quiet", SinkOptions{Output: &buf, Format: FormatJSON, Level: zerolog.WarnLevel})

	s.Log(zerolog.InfoLevel, "dropped")
	assert.Zero(t, buf.Len())

	s.Log(zerolog.ErrorLevel, "kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("console", Nop))

	err := r.Register("console", &CaptureSink{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSinkExists))

	var existsErr *SinkExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "console", existsErr.Name)

	got, ok := r.Get("console")
	require.True(t, ok)
	assert.Equal(t, Nop, got, "first registration is kept")
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	var r Registry
	assert.ErrorIs(t, r.Register("", Nop), ErrEmptySinkName)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	var r Registry
	calls := 0
	create := func(string) Sink {
		calls++
		return &CaptureSink{}
	}

	first := r.GetOrCreate("console", create)
	second := r.GetOrCreate("console", create)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"console"}, r.Names())
}

func TestRegistry_GetOrCreateConcurrent(t *testing.T) {
	var r Registry
	var created sync.Map
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.GetOrCreate("console", func(string) Sink { return &CaptureSink{} })
			created.Store(s, struct{}{})
		}()
	}
	wg.Wait()

	n := 0
	created.Range(func(_, _ any) bool {
		n++
		return true
	})
	assert.Equal(t, 1, n, "all goroutines must share one sink")
}

func TestRegistry_Drop(t *testing.T) {
	var r Registry
	require.NoError(t, r.Register("a", Nop))
	require.NoError(t, r.Register("b", Nop))

	assert.True(t, r.Drop("a"))
	assert.False(t, r.Drop("a"))
	assert.Equal(t, []string{"b"}, r.Names())

	_, ok := r.Get("a")
	assert.False(t, ok)
}

func TestConsole_ReusesProcessSink(t *testing.T) {
	name := "test-console-reuse"
	t.Cleanup(func() { Sinks().Drop(name) })

	first := Console(name, SinkOptions{Format: FormatJSON})
	second := Console(name, SinkOptions{Format: FormatConsole})

	assert.Same(t, first, second)
	assert.Contains(t, Sinks().Names(), name)
}

func TestCaptureSink(t *testing.T) {
	c := &CaptureSink{}
	c.Log(zerolog.InfoLevel, "one")
	c.Log(zerolog.ErrorLevel, "two")

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Level: zerolog.ErrorLevel, Message: "two"}, entries[1])

	entries[0].Message = "mutated"
	assert.Equal(t, "one", c.Entries()[0].Message, "Entries returns a copy")

	c.Reset()
	assert.Empty(t, c.Entries())
}

func TestConsoleSink_IgnoresBaseLevel(t *testing.T) {
	for _, level := range []string{"fatal", "panic", "disabled"} {
		t.Run(level, func(t *testing.T) {
			var base, diag bytes.Buffer
			Reconfigure(Config{Level: level, Output: &base})
			t.Cleanup(func() { Reconfigure(Config{}) })

			s := NewConsoleSink("console", SinkOptions{Output: &diag, Format: FormatJSON})
			s.Log(zerolog.ErrorLevel, "hello from external library.")
			l := Base()
			l.Error().Msg("suppressed")

			assert.Contains(t, diag.String(), "hello from external library.")
			assert.Empty(t, base.String())
		})
	}
}

func TestConsole_LogsCreation(t *testing.T) {
	var base bytes.Buffer
	Reconfigure(Config{Level: "debug", Output: &base})
	t.Cleanup(func() { Reconfigure(Config{}) })

	const name = "creation-check"
	t.Cleanup(func() { Sinks().Drop(name) })

	first := Console(name, SinkOptions{Format: FormatJSON})
	second := Console(name, SinkOptions{})
	assert.Same(t, first, second)

	require.Equal(t, 1, strings.Count(base.String(), "\n"), base.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(base.Bytes(), &entry))
	assert.Equal(t, "sink.created", entry[FieldEvent])
	assert.Equal(t, name, entry[FieldSink])
	assert.Equal(t, "json", entry["format"])
}
