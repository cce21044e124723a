// Package app wires the application core at startup and runs the
// console front-end that stands in for the view coordinator.
package app

import (
	"fmt"
	"net/http"
	"os"

	"helpboard/pkg/config"
	"helpboard/pkg/logger"
	"helpboard/pkg/notify"
	"helpboard/pkg/state"
	"helpboard/pkg/store"
	"helpboard/pkg/telemetry"
)

// Run builds the application state from cfg and hands control to the
// console until the user quits.
func Run(cfg config.Config) error {
	// Config-file logging values apply only when the env vars are
	// unset; the env always wins.
	if os.Getenv("HELPBOARD_LOG_LEVEL") == "" && cfg.Logging.Level != "" {
		os.Setenv("HELPBOARD_LOG_LEVEL", cfg.Logging.Level)
	}
	if os.Getenv("HELPBOARD_LOG_SINK") == "" && cfg.Logging.Sink != "" {
		os.Setenv("HELPBOARD_LOG_SINK", cfg.Logging.Sink)
	}
	logger.Init()

	var kv store.KV
	if cfg.Storage.DBPath == "" {
		logger.Log.Warn("no db path configured; preferences will not survive restart")
		kv = store.NewMemory()
	} else {
		p, err := store.OpenPebble(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("open store at %s: %w", cfg.Storage.DBPath, err)
		}
		kv = p
	}
	defer kv.Close()

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", telemetry.Handler())
		go func() {
			logger.Log.Info("metrics_listener_started", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Log.Error("metrics_listener_failed", "addr", cfg.Metrics.Addr, "err", err)
			}
		}()
	}

	app := state.New(state.Options{KV: kv, Sink: consoleSink{}})
	return runConsole(app, os.Stdin, os.Stdout)
}

// consoleSink prints notifications the way the client's toast layer
// would, and mirrors them to the log.
type consoleSink struct{}

func (consoleSink) Notify(kind notify.Kind, title, detail string) {
	fmt.Printf("[%s] %s: %s\n", kind, title, detail)
	notify.LogSink{}.Notify(kind, title, detail)
}
