package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/communitystore/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Cart     *apiHandler.CartHandler
	Catalog  *apiHandler.CatalogHandler
	Checkout *apiHandler.CheckoutHandler
	Profile  *apiHandler.ProfileHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/api/health", handlers.Health.Check)

	// Public routes
	r.POST("/api/signup", handlers.Auth.Signup)
	r.POST("/api/login", handlers.Auth.Login)
	r.GET("/api/catalog", handlers.Catalog.Catalog)
	r.GET("/api/search", handlers.Catalog.Search)

	// Protected routes
	r.GET("/api/me", authMiddleware(handlers.Profile.Me))
	r.PATCH("/api/profile", authMiddleware(handlers.Profile.Update))

	r.GET("/api/cart", authMiddleware(handlers.Cart.Get))
	r.POST("/api/cart", authMiddleware(handlers.Cart.Add))
	r.PATCH("/api/cart/{id}", authMiddleware(handlers.Cart.Update))
	r.DELETE("/api/cart/{id}", authMiddleware(handlers.Cart.Remove))
	r.POST("/api/cart/clear", authMiddleware(handlers.Cart.Clear))

	r.POST("/api/checkout", authMiddleware(handlers.Checkout.Checkout))
	r.GET("/api/purchase-history", authMiddleware(handlers.Checkout.History))

	r.GlobalOPTIONS = func(ctx *fasthttp.RequestCtx) {
		setCORSHeaders(ctx)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	}

	return r
}

// WithCORS wraps the router handler so every response carries the CORS
// headers, including errors produced before a route handler runs.
func WithCORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		setCORSHeaders(ctx)
		next(ctx)
	}
}

func setCORSHeaders(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
