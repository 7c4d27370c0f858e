package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hufschlaeger.net/sonar-contacts-exporter/internal/config"
	"hufschlaeger.net/sonar-contacts-exporter/internal/logging"
	"hufschlaeger.net/sonar-contacts-exporter/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Fehler beim Laden der Konfiguration: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	logCfg.Pretty = cfg.LogPretty
	logging.Setup(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter := service.NewExporter(cfg)

	if err := exporter.Export(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "❌ Export fehlgeschlagen: %v\n", err)
		os.Exit(1)
	}
}
