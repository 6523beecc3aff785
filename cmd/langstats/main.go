// Command langstats fetches the radio-browser language listing, folds it into
// canonical languages and writes processed_languages.json.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/radiocatalog/internal/app"
	"github.com/heartmarshall/radiocatalog/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := app.RunLangStats(ctx, cfg, logger); err != nil {
		logger.Error("language statistics failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
