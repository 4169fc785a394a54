package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/groupdrive-backend/api/routes"
	"github.com/angelmondragon/groupdrive-backend/internal/auth"
	"github.com/angelmondragon/groupdrive-backend/internal/catalog"
	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/internal/offers"
	"github.com/angelmondragon/groupdrive-backend/internal/payments"
	"github.com/angelmondragon/groupdrive-backend/internal/preferences"
	"github.com/angelmondragon/groupdrive-backend/internal/users"
	"github.com/angelmondragon/groupdrive-backend/pkg/auth/session"
	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	"github.com/angelmondragon/groupdrive-backend/pkg/migrate"
	"github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, dbClient.Close()) }()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, redisClient.Close()) }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		return err
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return err
	}

	catalogStack, err := catalog.NewStack(catalog.StackParams{
		DB:       dbClient,
		Redis:    redisClient,
		Config:   cfg.Catalog,
		UseCache: cfg.FeatureFlags.CatalogCache,
		Logger:   logg,
		Metrics:  metrics.NewCatalogMetrics(reg),
	})
	if err != nil {
		return err
	}

	groupRepo := groups.NewRepository(dbClient.DB())
	groupService, err := groups.NewService(dbClient, logg)
	if err != nil {
		return err
	}
	paymentService, err := payments.NewService(payments.ServiceParams{
		DB:      dbClient,
		Groups:  groupRepo,
		Catalog: catalogStack.Resolver,
		Metrics: metrics.NewPaymentMetrics(reg),
		Logger:  logg,
	})
	if err != nil {
		return err
	}
	preferenceService, err := preferences.NewService(preferences.NewRepository(dbClient.DB()), groupRepo, catalogStack.Resolver)
	if err != nil {
		return err
	}
	offerService, err := offers.NewService(dbClient, logg)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		Gatherer:    reg,
		Metrics:     metrics.NewHTTPMetrics(reg),
		DB:          dbClient,
		Redis:       redisClient,
		Sessions:    sessionManager,
		Auth:        authService,
		Catalog:     catalogStack.Resolver,
		Seeder:      catalogStack.Seeder,
		Groups:      groupService,
		Payments:    paymentService,
		Preferences: preferenceService,
		Offers:      offerService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}
