package middleware

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// HumaRequestLogger attaches a zerolog logger tagged with the operation and
// request id to the request context; downstream code reads it with zerolog.Ctx.
func HumaRequestLogger() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = strconv.FormatInt(time.Now().UnixNano(), 36)
		}
		ctx.SetHeader(RequestIDHeader, requestID)

		logger := log.With().
			Str("operation", ctx.Operation().OperationID).
			Str("request_id", requestID).
			Logger()

		next(huma.WithContext(ctx, logger.WithContext(ctx.Context())))
	}
}
