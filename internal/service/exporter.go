package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hufschlaeger.net/sonar-contacts-exporter/internal/config"
	"hufschlaeger.net/sonar-contacts-exporter/internal/logging"
	sonarRepo "hufschlaeger.net/sonar-contacts-exporter/internal/repository/sonar"
)

type Exporter struct {
	config    *config.Config
	sonarRepo *sonarRepo.Repository
	mapper    *Mapper
	log       zerolog.Logger
}

func NewExporter(cfg *config.Config) *Exporter {
	return &Exporter{
		config:    cfg,
		sonarRepo: sonarRepo.NewRepository(cfg),
		mapper:    NewMapper(),
		log:       logging.NewLogger("exporter"),
	}
}

// Export startet den Hauptexport-Prozess. Der erste Fehler bricht den Lauf ab.
func (e *Exporter) Export(ctx context.Context) error {
	// 1. Konfiguration validieren
	if err := e.config.Validate(); err != nil {
		return err
	}

	e.log.Info().Str("url", e.config.URL).Msg("🔍 Ermittle Anzahl der Rufnummern")

	// 2. Anzahl ermitteln
	count, err := e.sonarRepo.CountPhoneNumbers(ctx)
	if err != nil {
		return fmt.Errorf("fehler beim Ermitteln der Anzahl: %w", err)
	}

	e.log.Info().Int("count", count).Msg("📊 Rufnummern gefunden")

	// 3. Alle Rufnummern auf einer Seite laden
	entities, err := e.sonarRepo.GetPhoneNumbers(ctx, count)
	if err != nil {
		return fmt.Errorf("fehler beim Laden der Rufnummern: %w", err)
	}

	if len(entities) != count {
		e.log.Warn().Int("expected", count).Int("received", len(entities)).Msg("⚠️  Anzahl weicht ab")
	}

	// 4. Zeilen bilden und schreiben
	rows := e.mapper.EntitiesToRows(entities)
	filename := e.generateFilename()

	if err := WriteContactsCSV(filename, rows); err != nil {
		return err
	}

	e.log.Info().Str("file", filename).Int("rows", len(rows)).Msg("✅ Datei erstellt")
	return nil
}

func (e *Exporter) generateFilename() string {
	if e.config.OutputFile != "" {
		return e.config.OutputFile
	}
	return config.DefaultOutputFile
}
