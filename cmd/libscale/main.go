// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// libscale is a C shared library exporting the quadrupling function.
//
// Build:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libscale.so ./cmd/libscale
//
// The build also writes libscale.h declaring:
//
//	extern int double_input(int input);
//
// Every call prints "Function is evaluated." to stdout and logs
// "hello from external library." at error level through the console sink
// configured by LIBSCALE_CONFIG and the LIBSCALE_* environment variables.
package main

import "github.com/SheldonNico/templates/internal/scale"

// doubleInput is the Go side of the double_input export.
func doubleInput(input int32) int32 {
	return scale.Default().Evaluate(input)
}

// main is required by -buildmode=c-shared and never runs inside a host process.
func main() {}
