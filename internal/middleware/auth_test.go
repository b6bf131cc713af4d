package middleware

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/communitystore/backend/repository/memory"
)

func TestTokenAuth(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))
	require.NoError(t, store.SaveToken(ctx, "token_alice_1", "u1"))

	wrap := TokenAuth(store, nil)

	t.Run("valid bearer token forwards the user id", func(t *testing.T) {
		var seen string
		handler := wrap(func(reqCtx *fasthttp.RequestCtx) {
			seen = string(reqCtx.Request.Header.Peek("X-User-ID"))
		})

		reqCtx := &fasthttp.RequestCtx{}
		reqCtx.Request.Header.Set("Authorization", "Bearer token_alice_1")
		handler(reqCtx)

		assert.Equal(t, "u1", seen)
	})

	t.Run("raw token without bearer prefix also works", func(t *testing.T) {
		var seen string
		handler := wrap(func(reqCtx *fasthttp.RequestCtx) {
			seen = string(reqCtx.Request.Header.Peek("X-User-ID"))
		})

		reqCtx := &fasthttp.RequestCtx{}
		reqCtx.Request.Header.Set("Authorization", "token_alice_1")
		handler(reqCtx)

		assert.Equal(t, "u1", seen)
	})

	t.Run("missing header rejects with the contract envelope", func(t *testing.T) {
		called := false
		handler := wrap(func(reqCtx *fasthttp.RequestCtx) { called = true })

		reqCtx := &fasthttp.RequestCtx{}
		handler(reqCtx)

		assert.False(t, called)
		assert.Equal(t, fasthttp.StatusUnauthorized, reqCtx.Response.StatusCode())

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(reqCtx.Response.Body(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Access token required", body["message"])
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		called := false
		handler := wrap(func(reqCtx *fasthttp.RequestCtx) { called = true })

		reqCtx := &fasthttp.RequestCtx{}
		reqCtx.Request.Header.Set("Authorization", "Bearer token_nobody_1")
		handler(reqCtx)

		assert.False(t, called)
		assert.Equal(t, fasthttp.StatusUnauthorized, reqCtx.Response.StatusCode())
	})
}
