package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"userblog/internal/config"
	"userblog/internal/events"
	"userblog/internal/logging"
	"userblog/internal/server"
	"userblog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := logging.Setup(cfg.Log, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	// --- Stores ---
	stores, err := server.NewStores(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize stores")
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("Stores seeded")
	if !cfg.Security.HashPasswords {
		log.Warn().Msg("Passwords are stored and returned in plain text; set security.hash_passwords to hash them")
	}

	// --- Optional RabbitMQ forwarding ---
	var sink events.Sink
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		sink = mqClient
	}

	srv, err := server.New(cfg, stores, sink, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build server")
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := srv.Listen(); err != nil {
			log.Error().Err(err).Msg("Server stopped")
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info().Msg("Shutting down server...")

	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
	log.Info().Msg("Server gracefully stopped")
}
