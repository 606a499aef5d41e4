// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"sync"

	"github.com/rs/zerolog"
)

// Entry is one message recorded by a CaptureSink.
type Entry struct {
	Level   zerolog.Level
	Message string
}

// CaptureSink keeps every entry in memory. Safe for concurrent use.
type CaptureSink struct {
	mu      sync.Mutex
	entries []Entry
}

func (c *CaptureSink) Log(level zerolog.Level, msg string) {
	c.mu.Lock()
	c.entries = append(c.entries, Entry{Level: level, Message: msg})
	c.mu.Unlock()
}

// Entries returns a copy of everything logged so far.
func (c *CaptureSink) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Reset forgets all recorded entries.
func (c *CaptureSink) Reset() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}
