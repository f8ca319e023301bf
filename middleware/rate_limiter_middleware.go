package middleware

import (
	"fmt"
	"net/http"
	"time"

	localCache "github.com/adexaja/trade-analysis-ai/cache"
	"github.com/adexaja/trade-analysis-ai/config"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Analyses are slow and cost tokens, so the budget per IP is small.
const (
	requestsPerMinute = 10
	burst             = 5
)

func RateLimiter(cfg *config.ConfigManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !cfg.GetConfig().RateLimiter || ctx.Request.Method != http.MethodPost {
			ctx.Next()
			return
		}
		ip := ctx.ClientIP()

		var limiter *rate.Limiter
		if val, found := localCache.RateLimiterCache.Get(ip); found {
			limiter = val.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), burst)
			localCache.RateLimiterCache.Set(ip, limiter, cache.DefaultExpiration)
		}

		if !limiter.Allow() {
			wait := time.Minute / requestsPerMinute
			ctx.Header("Retry-After", fmt.Sprintf("%d", int(wait.Seconds())))
			log.Warn().Str("ip", ip).Str("path", ctx.Request.URL.Path).Msg("rate limit exceeded")
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"details": fmt.Sprintf("Too many analysis requests. Try again in %d seconds.", int(wait.Seconds())),
			})
			return
		}

		ctx.Next()
	}
}

// RecoveryMiddleware turns a panic into the route's generic failure payload.
func RecoveryMiddleware(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			log.Error().
				Interface("panic", err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("PANIC_RECOVERED")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to analyze trade",
				"details": fmt.Sprint(err),
			})
		}
	}()
	c.Next()
}

func ZerologMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" || path == "/openapi.json" || path == "/openapi.yaml" || path == "/favicon.ico" {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("HTTP Request")
	}
}
