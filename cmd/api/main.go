package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mavesys/foodcourt-api/internal/config"
	"github.com/mavesys/foodcourt-api/internal/server"
	"github.com/mavesys/foodcourt-api/shared/logging"
	"github.com/mavesys/foodcourt-api/shared/mailer"
	"github.com/mavesys/foodcourt-api/shared/mongodb"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

func main() {
	bootLogger := logging.New("foodcourt-api", false)

	cfg := config.New(&bootLogger)
	logger := logging.New("foodcourt-api", cfg.PrettyLogs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	validator, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize validator")
	}

	mail := mailer.NewMailer(&logger)

	srv, err := server.New(ctx, cfg, logger, server.Dependencies{
		DB:        db,
		Mail:      mail,
		Validator: validator,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server error")
	}

	logger.Info().Msg("server stopped")
}
