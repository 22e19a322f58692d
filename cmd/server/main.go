package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	"shop_backend/internal/platform/config"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logger"
	"shop_backend/internal/platform/password"
	infraredis "shop_backend/internal/platform/redis"
	"shop_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()
	lg := logger.New(logger.Options{
		Service: "shop-backend",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		JSON:    cfg.IsProduction(),
	})
	if err := cfg.Validate(); err != nil {
		lg.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, lg); err != nil {
		lg.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	lg.Info("bye")
}

func run(cfg config.Config, lg *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := infradb.Close(db); err != nil {
			lg.Error("failed to close database", "error", err)
		}
	}()

	// Redis（任意）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		if !errors.Is(err, infraredis.ErrDisabled) {
			lg.Warn("Redis unavailable. Running without cache.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				lg.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	hasher := password.NewHasher(0)
	products := di.NewProductRepository(db, rdb, cfg.ProductCacheTTL)

	if cfg.DB.SeedData {
		res, err := infradb.Seed(ctx, db, hasher)
		if err != nil {
			return err
		}
		// 商品を投入した場合は古い一覧キャッシュを捨てる
		if res.ProductsCreated > 0 {
			if err := products.Invalidate(ctx); err != nil {
				lg.Warn("failed to invalidate product cache", "error", err)
			}
		}
	}

	handlers := di.NewHandlers(di.Deps{
		Config:   cfg,
		DB:       db,
		Products: products,
		Payments: di.NewPaymentGateway(cfg.Stripe, lg),
		Hasher:   hasher,
	})
	opts := router.Options{CORSOrigins: cfg.CORSOrigins, TrustedProxies: cfg.TrustedProxies}
	if cfg.AuthRateLimit > 0 {
		opts.AuthLimiter = ratelimiter.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	}
	engine := router.NewRouter(handlers, opts)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWT.UsesDefaultSecret() {
		lg.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.Stripe.SecretKey == config.DefaultStripeKey {
		lg.Warn("STRIPE_SECRET_KEY is not set. Checkout sessions will fail.")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
