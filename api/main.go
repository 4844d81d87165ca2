package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	_ "github.com/rogerio-castellano/inventory-insights/docs"
	"github.com/rogerio-castellano/inventory-insights/internal/auth"
	"github.com/rogerio-castellano/inventory-insights/internal/cache"
	"github.com/rogerio-castellano/inventory-insights/internal/config"
	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	"github.com/rogerio-castellano/inventory-insights/internal/db"
	api "github.com/rogerio-castellano/inventory-insights/internal/http"
	"github.com/rogerio-castellano/inventory-insights/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-insights/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
	"github.com/rogerio-castellano/inventory-insights/internal/redissvc"
	"github.com/rogerio-castellano/inventory-insights/internal/repo"
)

// @title Inventory Insights API
// @version 1.0
// @description Read-only analytics over daily inventory records: MSL trends, consumption trends, category rollups and inventory turnover.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configDir := flag.String("config", ".", "directory searched for config.yaml")
	issueToken := flag.String("issue-token", "", "print a reload token for this subject and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of an issued token")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logging.GetLogger().Fatalf("Could not load configuration: %v", err)
	}
	logging.Configure(cfg.Log.Level)
	log := logging.GetLogger()

	signer := auth.NewSigner(cfg.Auth.JWTSecret)
	if *issueToken != "" {
		token, err := signer.GenerateToken(*issueToken, *tokenTTL)
		if err != nil {
			log.Fatalf("Could not issue token: %v", err)
		}
		fmt.Println(token)
		return
	}
	if !signer.Enabled() {
		log.Warn("auth.jwt_secret is empty; POST /dataset/reload will reject every request")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not set up %s source: %v", cfg.Source.Kind, err)
	}
	defer closeSource()

	snapshotCache, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not set up %s cache: %v", cfg.Cache.Kind, err)
	}
	defer closeCache()

	svc := dashboard.NewService(source, snapshotCache)
	if _, err := svc.Load(ctx); err != nil {
		log.Fatalf("Initial load failed: %v", err)
	}

	visitors := rl.NewVisitors(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go visitors.StartCleanupLoop(ctx)

	handlers.SetDashboard(svc)
	api.SetSigner(signer)
	api.SetVisitors(visitors)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server running on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func newSource(ctx context.Context, cfg config.Config) (repo.DatasetSource, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceHTTP:
		return repo.NewHTTPDatasetSource(cfg.Source.BaseURL, cfg.Source.Timeout), func() {}, nil
	case config.SourcePostgres:
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresDatasetSource(database), func() { database.Close() }, nil
	}
	return repo.NewFileDatasetSource(cfg.Source.ItemMasterPath, cfg.Source.InventoryPath), func() {}, nil
}

func newCache(ctx context.Context, cfg config.Config) (dashboard.SnapshotCache, func(), error) {
	switch cfg.Cache.Kind {
	case config.CacheMemory:
		c, err := cache.NewMemoryCache(cfg.Cache.Size)
		return c, func() {}, err
	case config.CacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("could not connect to Redis: %w", err)
		}
		return redissvc.NewRedisService(rdb, cfg.Cache.TTL), func() { rdb.Close() }, nil
	}
	return nil, func() {}, nil
}
