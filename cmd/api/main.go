package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mercora/storefront/api/routes"
	"github.com/mercora/storefront/internal/catalog"
	cartsvc "github.com/mercora/storefront/internal/cart"
	"github.com/mercora/storefront/internal/persistence"
	"github.com/mercora/storefront/internal/wishlist"
	"github.com/mercora/storefront/pkg/config"
	"github.com/mercora/storefront/pkg/logger"
	"github.com/mercora/storefront/pkg/metrics"
	"github.com/mercora/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var store persistence.Store
	var storePinger persistence.Pinger
	if cfg.Persistence.IsRedis() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		redisStore, err := persistence.NewRedisStore(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create redis store", err)
			os.Exit(1)
		}
		store = redisStore
		storePinger = redisStore
	} else {
		sqliteStore, err := persistence.NewSQLiteStore(context.Background(), cfg.Cache, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap sqlite store", err)
			os.Exit(1)
		}
		defer func() {
			if err := sqliteStore.Close(); err != nil {
				logg.Error(context.Background(), "error closing sqlite store", err)
			}
		}()
		store = sqliteStore
		storePinger = sqliteStore
	}

	catalogClient, err := catalog.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	cartMetrics := metrics.NewCartMetrics(prometheus.DefaultRegisterer)

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Catalog:  catalogClient,
		Store:    store,
		Resolver: cartsvc.NewResolver(cartsvc.NoMatchFirstVariant),
		Logger:   logg,
		Metrics:  cartMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	favoritesService, err := wishlist.NewService(wishlist.ServiceParams{
		Store:  store,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	if err := cartService.Hydrate(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to hydrate cart state", err)
		os.Exit(1)
	}
	if err := favoritesService.Hydrate(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to hydrate favorites", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Persistence.Backend,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, storePinger, catalogClient, cartService, favoritesService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}
