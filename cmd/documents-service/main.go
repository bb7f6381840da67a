package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/dealer-docs/internal/auth"
	"github.com/nurpe/dealer-docs/internal/config"
	"github.com/nurpe/dealer-docs/internal/db"
	"github.com/nurpe/dealer-docs/internal/documents"
	"github.com/nurpe/dealer-docs/internal/excel"
	httphandler "github.com/nurpe/dealer-docs/internal/http"
	"github.com/nurpe/dealer-docs/internal/http/middleware"
	"github.com/nurpe/dealer-docs/internal/logger"
	"github.com/nurpe/dealer-docs/internal/numbering"
	"github.com/nurpe/dealer-docs/internal/repository"
	"github.com/nurpe/dealer-docs/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireServer(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	style, err := cfg.Style()
	if err != nil {
		log.Warn().Err(err).Msg("company logo unavailable, documents will be rendered without it")
	}

	renderer, err := documents.NewRenderer(style,
		documents.WithLogger(logger.WithComponent(log, "renderer")),
		documents.WithStrict(cfg.Docs.Strict),
		documents.WithNumbering(numberGenerator(cfg, log)),
		documents.WithDefaultTaxRate(cfg.Docs.DefaultTaxRate),
		documents.WithDefaultValidityDays(cfg.Docs.ProformaValidityDays),
		documents.WithPrefixes(cfg.Docs.InvoicePrefix, cfg.Docs.ProformaPrefix),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init renderer")
	}

	documentRepo := repository.NewDocumentRepository(database)
	documentService := service.NewDocumentService(renderer, documentRepo, excel.NewRegisterGenerator(), logger.WithComponent(log, "service"))

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(documentService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting documents service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// numberGenerator prefers the shared redis sequence and falls back to random
// numbers, which are not guaranteed unique.
func numberGenerator(cfg *config.Config, log zerolog.Logger) numbering.Generator {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, invoice numbers are random and may repeat")
		return numbering.NewRandomGenerator(uint64(time.Now().UnixNano()))
	}
	client := numbering.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to reach redis")
	}
	return numbering.NewRedisSequence(client, "")
}
