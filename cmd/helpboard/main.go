package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"helpboard/internal/app"
	"helpboard/pkg/config"
)

func main() {
	_ = godotenv.Load(".env")

	cfgPath := flag.String("config", "helpboard.yaml", "path to the YAML config file")
	dbPath := flag.String("db", "", "pebble directory (overrides config)")
	metricsAddr := flag.String("metrics", "", "prometheus listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// Explicit flags win over config and env.
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	if err := app.Run(cfg); err != nil {
		log.Printf("helpboard exited with error: %v", err)
		os.Exit(1)
	}
}
