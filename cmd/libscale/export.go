// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

//go:build cgo

package main

import "C"

//export double_input
func double_input(input C.int) C.int {
	return C.int(doubleInput(int32(input)))
}
