package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/corvo-marketing/agency-console/docs"
	"github.com/corvo-marketing/agency-console/internal/api"
	"github.com/corvo-marketing/agency-console/internal/clients/gemini"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/config"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/seed"
	"github.com/corvo-marketing/agency-console/pkg/logger"
)

// @title           Agency Console API
// @version         1.0
// @description     Internal console for the agency: client roster, tasks, teams, and role-scoped reporting.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memory.NewStore()
	if cfg.SeedDemoData {
		if err := seed.Load(context.Background(), store); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo roster loaded")
	}

	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	}, log)
	if !geminiClient.Configured() {
		log.Warn().Msg("GEMINI_API_KEY not set; briefing suggestions will use fallback text")
	}

	e := api.NewRouter(api.RouterConfig{
		Store:       store,
		Gemini:      geminiClient,
		Suggestions: geminiClient,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
