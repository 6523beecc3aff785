// Command export groups stored stations by canonical language and writes one
// JSON file per language above the threshold plus index.json.
//
// Flags:
//
//	--config     path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--threshold  minimum station count is threshold+1 (default: export.threshold)
//	--out        output directory for the dir sink (overrides export.dir)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/radiocatalog/internal/app"
	"github.com/heartmarshall/radiocatalog/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	thresholdFlag := flag.Int("threshold", -1, "keep languages with more than this many stations (overrides config)")
	outFlag := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *outFlag != "" {
		cfg.Export.Dir = *outFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	res, err := app.RunExport(ctx, cfg, *thresholdFlag, logger)
	if err != nil {
		logger.Error("export failed",
			slog.String("error", err.Error()),
			slog.Int("files_written", len(res.Written)),
		)
		os.Exit(1)
	}
}
