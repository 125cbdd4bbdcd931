package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-verifier/internal/adapter"
	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/crypto"
	"github.com/MKhiriev/go-id-verifier/internal/handler"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/metrics"
	"github.com/MKhiriev/go-id-verifier/internal/server"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/internal/store"
	"github.com/MKhiriev/go-id-verifier/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-id-verifier")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	// the PII key is derived once, before anything can accept a request
	envelope, err := crypto.NewPiiEnvelope(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating PII envelope")
	}

	ctx := context.Background()
	m := metrics.New()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	adapters, err := adapter.NewAdapters(ctx, cfg.Providers, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}
	defer adapters.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, adapters, envelope, *cfg, m, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("starting go-id-verifier")

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
