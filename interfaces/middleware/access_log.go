package middleware

import (
	"strconv"
	"time"

	"channel-gateway/infrastructure/logger"
	"channel-gateway/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one entry per request and records its latency.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		latency := time.Since(start)

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := ctx.Writer.Status()
		metrics.HTTPRequestDuration.
			WithLabelValues(ctx.Request.Method, route, strconv.Itoa(status)).
			Observe(latency.Seconds())

		logger.GetLogger().
			WithField("method", ctx.Request.Method).
			WithField("path", ctx.Request.URL.Path).
			WithField("status", status).
			WithField("latency", latency.String()).
			WithField("request_id", GetRequestID(ctx)).
			Info("Request handled")
	}
}
