package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"home_service_booking/internal/handlers"
	"home_service_booking/internal/server"
	"home_service_booking/internal/session"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.RequireSigningKey(); err != nil {
		return err
	}
	if a.cfg.Auth.RegistrationKey == "" {
		a.log.Warnw("admin registration disabled: BOOKING_REGISTRATION_KEY is not set")
	}

	services, closer, err := a.newServices(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			a.log.Errorw("failed to close store", "err", cerr)
		}
	}()

	sessions := session.NewRegistry(a.cfg.Booking.SessionTTL)
	apiHandler := handlers.NewHandler(services, sessions, a.log)
	srv := server.New(a.cfg.Port, apiHandler.InitRoutes())

	errc := make(chan error, 1)
	go func() {
		a.log.Infow("server_started", "addr", srv.Addr())
		errc <- srv.Run()
	}()

	return waitForShutdown(srv, errc, a)
}

// waitForShutdown blocks until a termination signal or a listener failure, then drains in-flight requests.
func waitForShutdown(srv *server.Server, errc <-chan error, a *app) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	a.log.Infow("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return <-errc
}
