package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	billingapp "github.com/peplike/backend/internal/application/billing"
	builderapp "github.com/peplike/backend/internal/application/builder"
	catalogapp "github.com/peplike/backend/internal/application/catalog"
	favoritesapp "github.com/peplike/backend/internal/application/favorites"
	identityapp "github.com/peplike/backend/internal/application/identity"
	stackapp "github.com/peplike/backend/internal/application/stack"
	"github.com/peplike/backend/internal/domain/catalog"
	"github.com/peplike/backend/internal/infrastructure/auth"
	"github.com/peplike/backend/internal/infrastructure/billing"
	"github.com/peplike/backend/internal/infrastructure/config"
	"github.com/peplike/backend/internal/infrastructure/identity"
	"github.com/peplike/backend/internal/infrastructure/localstore"
	"github.com/peplike/backend/internal/infrastructure/logger"
	"github.com/peplike/backend/internal/infrastructure/persistence"
	"github.com/peplike/backend/internal/infrastructure/recommend"
	"github.com/peplike/backend/internal/infrastructure/telemetry"
	"github.com/peplike/backend/internal/interfaces/http/handler"
	"github.com/peplike/backend/internal/interfaces/http/middleware"
	"github.com/peplike/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting peplike backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version))

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Warn("Telemetry shutdown failed", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if tracerProvider.IsEnabled() {
		if err := db.DB.Use(otelgorm.NewPlugin(otelgorm.WithDBName(cfg.Database.Driver))); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	store := localstore.NewStore(db.DB)
	if err := store.Migrate(); err != nil {
		log.Fatal("Failed to migrate local store", zap.Error(err))
	}

	compounds := catalog.Load()
	log.Info("Catalog loaded", zap.Int("items", len(compounds.Items())))

	var engine recommend.Engine
	if cfg.Recommender.BaseURL != "" {
		engine = recommend.NewRemoteEngine(cfg.Recommender, log)
		log.Info("Using remote recommendation engine", zap.String("base_url", cfg.Recommender.BaseURL))
	} else {
		engine = recommend.NewLocalEngine()
		log.Info("Using local recommendation engine")
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	identityClient := identity.NewClient(cfg.AuthService, log)
	stripeAdapter := billing.NewStripeAdapter(cfg.Stripe, log)

	catalogService := catalogapp.NewService(compounds, log)
	stackService := stackapp.NewService(compounds, engine, log)
	favoritesService := favoritesapp.NewService(store, compounds, log)
	builderService := builderapp.NewService(store, compounds, log)
	identityService := identityapp.NewService(identityClient, store, log)
	billingService := billingapp.NewService(stripeAdapter, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginEngine := gin.New()
	ginEngine.Use(middleware.RequestID())
	ginEngine.Use(logger.Recovery(log))
	ginEngine.Use(logger.GinMiddleware(log))
	ginEngine.Use(middleware.CORS(cfg.HTTP))
	if tracerProvider.IsEnabled() {
		ginEngine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	requireAuth := middleware.JWTAuth(jwtService)

	r := router.NewRouter(ginEngine)
	r.Register(handler.NewSystemHandler(db, version))
	r.Register(handler.NewCatalogHandler(catalogService))
	r.Register(handler.NewStackHandler(stackService))
	r.Register(handler.NewBuilderHandler(builderService, requireAuth))
	r.Register(handler.NewFavoritesHandler(favoritesService, requireAuth))
	r.Register(handler.NewAuthHandler(identityService, requireAuth))
	r.Register(handler.NewBillingHandler(billingService, requireAuth))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
