// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Sink is a named destination for diagnostic messages.
type Sink interface {
	Log(level zerolog.Level, msg string)
}

// Format selects how a console sink renders entries.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// SinkOptions configures a ConsoleSink.
type SinkOptions struct {
	Output io.Writer // defaults to os.Stdout
	Format Format    // defaults to FormatConsole
	Color  bool
	Level  zerolog.Level
}

// ConsoleSink writes entries through zerolog, tagged with its name.
type ConsoleSink struct {
	name   string
	logger zerolog.Logger
}

// NewConsoleSink builds a sink named name. It does not register it anywhere.
func NewConsoleSink(name string, opts SinkOptions) *ConsoleSink {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    !opts.Color,
			TimeFormat: time.RFC3339,
		}
	}
	l := zerolog.New(out).Level(opts.Level).With().
		Timestamp().
		Str(FieldSink, name).
		Logger()
	return &ConsoleSink{name: name, logger: l}
}

// Name returns the name the sink was created with.
func (s *ConsoleSink) Name() string { return s.name }

// Log emits msg at level. Levels below the sink's threshold are dropped.
func (s *ConsoleSink) Log(level zerolog.Level, msg string) {
	s.logger.WithLevel(level).Msg(msg)
}

// Nop discards everything.
var Nop Sink = nopSink{}

type nopSink struct{}

func (nopSink) Log(zerolog.Level, string) {}

// Registry holds sinks by name. The zero value is ready to use.
type Registry struct {
	mu    sync.Mutex
	sinks map[string]Sink
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds sink under name. It fails with ErrSinkExists if the name is taken.
func (r *Registry) Register(name string, sink Sink) error {
	if name == "" {
		return ErrEmptySinkName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sinks[name]; ok {
		return &SinkExistsError{Name: name}
	}
	if r.sinks == nil {
		r.sinks = make(map[string]Sink)
	}
	r.sinks[name] = sink
	return nil
}

// Get returns the sink registered under name.
func (r *Registry) Get(name string) (Sink, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sinks[name]
	return s, ok
}

// GetOrCreate returns the sink registered under name, calling create and
// registering its result when there is none. create runs under the registry
// lock, so concurrent callers for one name always share a single sink.
func (r *Registry) GetOrCreate(name string, create func(name string) Sink) Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sinks[name]; ok {
		return s
	}
	if r.sinks == nil {
		r.sinks = make(map[string]Sink)
	}
	s := create(name)
	r.sinks[name] = s
	return s
}

// Drop removes name from the registry and reports whether it was present.
func (r *Registry) Drop(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sinks[name]
	delete(r.sinks, name)
	return ok
}

// Names returns the registered sink names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.sinks))
	for n := range r.sinks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var sinks = NewRegistry()

// Sinks returns the process-wide sink registry.
func Sinks() *Registry {
	return sinks
}

// Console returns the process-wide console sink called name, creating it
// with opts on first use. opts are ignored once the sink exists.
func Console(name string, opts SinkOptions) Sink {
	return sinks.GetOrCreate(name, func(n string) Sink {
		l := Derive(func(c *zerolog.Context) {
			*c = c.Str(FieldSink, n).Str("format", string(opts.Format))
		})
		l.Debug().
			Str(FieldEvent, "sink.created").
			Msg("console sink created")
		return NewConsoleSink(n, opts)
	})
}
