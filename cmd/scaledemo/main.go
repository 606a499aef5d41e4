// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// scaledemo calls the quadrupling function the way a foreign host would and
// prints each result.
//
// Usage:
//
//	scaledemo -input 3
//	scaledemo -input 3 -n 5 -config libscale.yaml
//
// Exit codes:
//   - 0: success
//   - 1: configuration error
//   - 2: usage error
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/SheldonNico/templates/internal/config"
	"github.com/SheldonNico/templates/internal/log"
	"github.com/SheldonNico/templates/internal/scale"
	"github.com/SheldonNico/templates/internal/version"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scaledemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.Int64("input", 3, "integer to quadruple (int32 range)")
	count := fs.Int("n", 1, "number of calls")
	configPath := fs.String("config", "", "path to YAML configuration file (defaults to $"+config.EnvConfigPath+")")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if *count < 1 {
		fmt.Fprintln(stderr, "Error: -n must be at least 1")
		return 2
	}
	if *input < math.MinInt32 || *input > math.MaxInt32 {
		fmt.Fprintf(stderr, "Error: -input %d is outside the int32 range\n", *input)
		return 2
	}

	path := *configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error:\n  %v\n", err)
		return 1
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = stderr
	log.Reconfigure(logCfg)

	opts := cfg.SinkOptions()
	opts.Output = stdout
	evaluator := scale.NewEvaluator(stdout, log.NewConsoleSink(cfg.Sink.Name, opts))

	ctx := log.ContextWithCallID(context.Background(), uuid.NewString())
	x := int32(*input)
	var result int32
	for i := 0; i < *count; i++ {
		result = evaluator.EvaluateContext(ctx, x)
		fmt.Fprintf(stdout, "return to go %d * %d = %d\n", x, scale.Factor, result)
	}

	logger := log.WithContext(ctx, log.WithComponent("scaledemo"))
	logger.Debug().
		Int32(log.FieldInput, x).
		Int32(log.FieldResult, result).
		Int("calls", *count).
		Bool(log.FieldWrapped, scale.Overflows(x)).
		Msg("demo finished")
	return 0
}
