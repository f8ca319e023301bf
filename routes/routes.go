package routes

import (
	"context"
	"fmt"

	"github.com/adexaja/trade-analysis-ai/cache"
	"github.com/adexaja/trade-analysis-ai/client"
	"github.com/adexaja/trade-analysis-ai/config"
	"github.com/adexaja/trade-analysis-ai/controller"
	"github.com/adexaja/trade-analysis-ai/database"
	"github.com/adexaja/trade-analysis-ai/middleware"
	"github.com/adexaja/trade-analysis-ai/service"
	"github.com/adexaja/trade-analysis-ai/validator"
	"github.com/adexaja/trade-analysis-ai/view"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BuildAnalysisService wires clients and services from the configuration.
func BuildAnalysisService(ctx context.Context, cfg *config.ConfigManager) (service.AnalysisService, error) {
	c := cfg.GetConfig()

	// --- 1. Clients ---
	generator, err := client.NewTextGenerator(c.LLM)
	if err != nil {
		return nil, err
	}
	if c.LLM.ApiKey == "" {
		log.Warn().Str("provider", c.LLM.Provider).Msg("no LLM api key configured, generation calls will fail")
	}

	var fetcher client.MarketDataFetcher
	if c.MarketData.Enabled {
		var store cache.CandleStore = cache.NewMemoryCandleStore()
		if c.RedisUrl != "" {
			redisStore, err := database.NewRedisStore(ctx, c.RedisUrl)
			if err != nil {
				return nil, fmt.Errorf("candle cache: %w", err)
			}
			store = cache.NewRedisCandleStore(redisStore)
		}
		fetcher = client.NewYahooClient(c.MarketData, store)
	}

	// --- 2. Services ---
	tradeValidator := validator.NewTradeAnalysisValidator(c.SchemaMode, c.Currency)
	generationSvc := service.NewGenerationService(generator, tradeValidator)

	log.Info().
		Str("provider", c.LLM.Provider).
		Str("model", c.LLM.Model).
		Str("schema_mode", c.SchemaMode).
		Bool("market_data", fetcher != nil).
		Msg("analysis pipeline ready")

	return service.NewAnalysisService(fetcher, generationSvc, c.Currency), nil
}

func SetupRouter(cfg *config.ConfigManager, analysisSvc service.AnalysisService) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(cfg))

	tmpl, err := view.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// --- 3. Routes & Controllers ---
	api := humagin.New(r, huma.DefaultConfig("Trade Analysis AI", "1.0.0"))
	controller.NewAnalysisController(analysisSvc).RegisterRoutes(api)

	controller.NewHealthController(cfg).RegisterRoutes(r.Group("/api"))
	controller.NewDashboardController(analysisSvc, cfg).RegisterRoutes(r)

	return r, nil
}
