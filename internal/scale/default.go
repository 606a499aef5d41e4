// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package scale

import (
	"os"
	"sync"

	"github.com/SheldonNico/templates/internal/config"
	"github.com/SheldonNico/templates/internal/log"
)

var (
	defaultOnce sync.Once
	defaultEval *Evaluator
)

// Default returns the process-wide evaluator used by the C export. On first
// use it loads configuration (LIBSCALE_CONFIG plus environment), configures
// the base logger and binds the evaluator to the named console sink. A broken
// configuration falls back to the defaults instead of failing the caller.
func Default() *Evaluator {
	defaultOnce.Do(func() {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			cfg = config.Defaults()
		}
		log.Reconfigure(cfg.LoggerConfig())

		logger := log.WithComponent("scale")
		if err != nil {
			logger.Warn().Err(err).
				Str(log.FieldEvent, "config.fallback").
				Msg("invalid configuration, using defaults")
		}

		defaultEval = NewEvaluator(os.Stdout, log.Console(cfg.Sink.Name, cfg.SinkOptions()))
		logger.Debug().
			Str(log.FieldEvent, "evaluator.ready").
			Str(log.FieldSink, cfg.Sink.Name).
			Msg("default evaluator initialised")
	})
	return defaultEval
}
