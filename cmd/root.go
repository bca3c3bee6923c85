package main

import (
	"context"
	"fmt"
	"io"

	"home_service_booking/internal/config"
	"home_service_booking/internal/logger"
	"home_service_booking/internal/repository"
	"home_service_booking/internal/repository/db"
	"home_service_booking/internal/service"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the config is loaded.
type app struct {
	configDir string
	cfg       *config.Config
	log       *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "booking",
		Short: "Home service appointment booking",
		Long: `Books two-hour service windows on weekday evenings.

serve     runs the HTTP API used by clients and the administrator
book      walks through the booking wizard in the terminal
rain-day  moves every pending appointment to the next weekday`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configDir)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Get(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config", "configs", "directory containing config.yml")

	root.AddCommand(newServeCmd(a), newBookCmd(a), newRainDayCmd(a))
	return root
}

// openDocuments opens the configured document backend. The returned closer releases it.
func openDocuments(cfg *config.Config) (repository.DocumentRepo, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repository.NewDocumentSQLite(conn), conn, nil
	default:
		return repository.NewJSONFileStore(cfg.Store.Path), nopCloser{}, nil
	}
}

func serviceOptions(cfg *config.Config) service.Options {
	return service.Options{
		HorizonDays:     cfg.Booking.HorizonDays,
		Location:        cfg.Location(),
		SigningKey:      cfg.Auth.SigningKey,
		TokenTTL:        cfg.Auth.TokenTTL,
		RegistrationKey: cfg.Auth.RegistrationKey,
	}
}

// newServices opens the store, loads the document once (seeding it on first run) and
// builds the service layer on top of it. An unreadable or corrupt document is fatal.
func (a *app) newServices(ctx context.Context) (*service.Service, io.Closer, error) {
	docs, closer, err := openDocuments(a.cfg)
	if err != nil {
		return nil, nil, err
	}
	if _, err := docs.Load(ctx); err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("load document from %s store %q: %w", a.cfg.Store.Driver, a.cfg.Store.Path, err)
	}
	a.log.Infow("store_opened", "driver", a.cfg.Store.Driver, "path", a.cfg.Store.Path)
	return service.NewService(repository.NewRepository(docs), serviceOptions(a.cfg)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
