package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/communitystore/backend/api/handler"
	"github.com/communitystore/backend/internal/catalog"
	"github.com/communitystore/backend/internal/config"
	mongoInfra "github.com/communitystore/backend/internal/infrastructure/mongodb"
	"github.com/communitystore/backend/internal/infrastructure/monitor"
	"github.com/communitystore/backend/internal/middleware"
	"github.com/communitystore/backend/internal/router"
	"github.com/communitystore/backend/internal/services/lifecycle"
	"github.com/communitystore/backend/pkg/httpcontext"
	"github.com/communitystore/backend/pkg/logger"
	"github.com/communitystore/backend/repository"
	memoryRepo "github.com/communitystore/backend/repository/memory"
	mongoRepo "github.com/communitystore/backend/repository/mongodb"
	authUC "github.com/communitystore/backend/usecase/auth"
	cartUC "github.com/communitystore/backend/usecase/cart"
	checkoutUC "github.com/communitystore/backend/usecase/checkout"
	settingsUC "github.com/communitystore/backend/usecase/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store := openStore(appCtx, cfg, manager, zapLogger)

	catalogStore := catalog.NewStore()

	mon := monitor.New(store, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	authUseCase := authUC.New(store, zapLogger)
	cartUseCase := cartUC.New(store, catalogStore, zapLogger)
	checkoutUseCase := checkoutUC.New(store, zapLogger)
	settingsUseCase := settingsUC.New(store, authUseCase, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Cart:     apiHandler.NewCartHandler(cartUseCase, ctxAdapter, zapLogger),
		Catalog:  apiHandler.NewCatalogHandler(catalogStore, ctxAdapter, zapLogger),
		Checkout: apiHandler.NewCheckoutHandler(checkoutUseCase, ctxAdapter, zapLogger),
		Profile:  apiHandler.NewProfileHandler(settingsUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, cfg.HTTP.Port, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.TokenAuth(store, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      router.WithCORS(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("backend", store.Kind()),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// openStore connects to MongoDB when reachable and otherwise falls back to
// the in-process store, so the server always boots.
func openStore(ctx context.Context, cfg *config.Config, manager *lifecycle.Manager, zapLogger *zap.Logger) repository.UserStore {
	client, db, err := mongoInfra.Connect(ctx, cfg.Mongo, zapLogger)
	if err == nil {
		if idxErr := mongoInfra.EnsureIndexes(ctx, db, zapLogger); idxErr != nil {
			zapLogger.Warn("failed to ensure mongodb indexes", zap.Error(idxErr))
		}
		manager.Register("mongodb", func(ctx context.Context) error {
			mongoInfra.Close(client, zapLogger)
			return nil
		})
		return mongoRepo.NewUserStore(db, zapLogger)
	}

	zapLogger.Warn("mongodb unavailable, using in-memory store", zap.Error(err))
	store := memoryRepo.NewUserStore()
	seedDemoUser(ctx, store, zapLogger)
	return store
}

// seedDemoUser gives the in-memory backend a known account so the API is
// usable immediately after a fallback boot.
func seedDemoUser(ctx context.Context, store repository.UserStore, zapLogger *zap.Logger) {
	err := store.CreateUser(ctx, "testuser", "test@example.com", "testpass", uuid.NewString())
	if err != nil {
		zapLogger.Warn("failed to seed demo user", zap.Error(err))
		return
	}
	zapLogger.Info("seeded demo user", zap.String("username", "testuser"))
}
