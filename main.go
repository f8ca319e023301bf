package main

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/adexaja/trade-analysis-ai/config"
	"github.com/adexaja/trade-analysis-ai/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	cfg := sysConfigs.Config
	setupLogger(cfg.Environment, cfg.LogLevel)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfgManager := config.NewConfigManager(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	analysisSvc, err := routes.BuildAnalysisService(ctx, cfgManager)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error building analysis service")
	}

	router, err := routes.SetupRouter(cfgManager, analysisSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("Error setting up router")
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func setupLogger(environment, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	// zerolog.Ctx falls back to this logger when a request carries none
	zerolog.DefaultContextLogger = &log.Logger
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
