// Command ingest pages through the radio-browser directory and upserts every
// station into the configured store, then persists summary statistics.
//
// Flags:
//
//	--config       path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--page-size    override ingest.page_size
//	--sweep-stale  delete stations missing from a complete run
//
// Exit codes: 0 = success, 1 = error or failed records.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/radiocatalog/internal/app"
	"github.com/heartmarshall/radiocatalog/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	pageSizeFlag := flag.Int("page-size", 0, "stations per upstream page (overrides config)")
	sweepFlag := flag.Bool("sweep-stale", false, "delete stations missing from a complete run")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *pageSizeFlag > 0 {
		cfg.Ingest.PageSize = *pageSizeFlag
	}
	if *sweepFlag {
		cfg.Ingest.SweepStale = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Ingest.Timeout)
	defer cancel()

	res, err := app.RunIngest(ctx, cfg, logger)
	if err != nil {
		logger.Error("ingestion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.Failed > 0 {
		logger.Warn("ingestion completed with failed records", slog.Int("failed", res.Failed))
		os.Exit(1)
	}
}
