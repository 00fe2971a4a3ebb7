package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-otp-vault/internal/client"
	"github.com/MKhiriev/go-otp-vault/internal/config"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/service"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("vaultctl")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(log.WithContext(ctx), log, os.Args[1:])
	stop()

	switch {
	case err == nil:
	case errors.Is(err, client.ErrNoCommand), errors.Is(err, client.ErrUnknownCommand):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "vaultctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, args []string) error {
	cfg, rest, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("failed to close storages")
		}
	}()

	services, err := service.NewServices(storages, cfg)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	app, err := client.NewApp(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err != nil {
		return err
	}

	return app.Run(ctx, rest)
}
