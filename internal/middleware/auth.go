package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/repository"
)

const lookupTimeout = 5 * time.Second

// TokenAuth resolves the bearer token against the store and forwards the
// resolved user id to handlers via the X-User-ID header.
func TokenAuth(store repository.UserStore, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			token := extractToken(ctx)
			if token == "" {
				unauthorized(ctx)
				return
			}

			lookupCtx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
			userID, err := store.UserIDFromToken(lookupCtx, token)
			cancel()
			if err != nil {
				logger.Warn("token lookup failed", zap.Error(err))
				unauthorized(ctx)
				return
			}

			ctx.Request.Header.Set("X-User-ID", userID)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

func unauthorized(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	body, _ := json.Marshal(map[string]interface{}{
		"success": false,
		"message": "Access token required",
	})
	ctx.SetBody(body)
}
