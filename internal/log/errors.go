// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"errors"
	"fmt"
)

var (
	// ErrSinkExists is matched by errors.Is for every SinkExistsError.
	ErrSinkExists = errors.New("sink already registered")

	// ErrEmptySinkName is returned when a sink is registered without a name.
	ErrEmptySinkName = errors.New("sink name is empty")
)

// SinkExistsError reports a name collision in a Registry.
type SinkExistsError struct {
	Name string
}

func (e *SinkExistsError) Error() string {
	return fmt.Sprintf("sink %q already registered", e.Name)
}

func (e *SinkExistsError) Is(target error) bool {
	return target == ErrSinkExists
}
