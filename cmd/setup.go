package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/config"
	"github.com/papapumpkin/astrostay/internal/logging"
	"github.com/papapumpkin/astrostay/internal/reservation"
	"github.com/papapumpkin/astrostay/internal/telemetry"
)

// session bundles what every command builds from the config.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	events  *telemetry.Emitter
	catalog *catalog.Catalog
}

// openSession loads config, the logger, the telemetry sink and the catalog.
// Callers must close the session.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		File:        cfg.LogFile,
		Level:       cfg.LogLevel,
		Development: cfg.LogFormat == config.LogFormatConsole,
	})
	if err != nil {
		return nil, err
	}

	var events *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		events, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			_ = logger.Sync()
			return nil, err
		}
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			_ = events.Close()
			_ = logger.Sync()
			return nil, err
		}
		logger.Info("catalog override loaded", zap.String("path", cfg.CatalogPath))
	}

	return &session{cfg: cfg, logger: logger, events: events, catalog: cat}, nil
}

// desk creates a reservation desk wired to the session.
func (s *session) desk() *reservation.Desk {
	return reservation.NewDesk(
		reservation.WithClock(clock),
		reservation.WithCatalog(s.catalog),
		reservation.WithLogger(s.logger),
		reservation.WithTelemetry(s.events),
	)
}

func (s *session) Close() {
	_ = s.events.Close()
	_ = s.logger.Sync()
}
