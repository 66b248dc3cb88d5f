package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/internal/app"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Config
	if _, err := os.Stat(".env"); err == nil {
		err = godotenv.Load()
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	}

	cfg, err := config.NewExport()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	l := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run
	_, err = app.RunExport(ctx, cfg, l)
	if err != nil {
		stop()
		l.Fatal(fmt.Errorf("Export failed: %w", err))
	}
}
