package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "shop_backend/internal/feature/auth/transport/handler"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	producthandler "shop_backend/internal/feature/catalog/transport/handler"
	checkouthandler "shop_backend/internal/feature/checkout/transport/handler"
	"shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/middleware"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Products *producthandler.ProductHandler
	Cart     *carthandler.CartHandler
	Checkout *checkouthandler.CheckoutHandler
	Gate     *jwtmw.Gate
}

// Options はルーターの横断的な設定です。
type Options struct {
	// CORSOrigins が空の場合はすべてのOriginを許可します（資格情報は送れません）。
	CORSOrigins []string
	// AuthLimiter が nil でなければ signup と login に回数制限をかけます。
	AuthLimiter ratelimiter.Limiter
	// TrustedProxies が空の場合、ClientIP は X-Forwarded-For を無視して接続元アドレスを使います。
	TrustedProxies []string
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		slog.Warn("invalid trusted proxies, trusting none", "proxies", opts.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		cors.New(corsConfig(opts.CORSOrigins)),
	)

	// 認証不要
	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	api := r.Group("/api")

	auth := api.Group("")
	if opts.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(opts.AuthLimiter))
	}
	// 新規ユーザー登録
	auth.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	auth.POST("/login", h.Auth.Login)
	api.GET("/products", h.Products.List)

	// 認証必須のルート
	// Gate.Guard が Authorization ヘッダーを検証し、Identity をハンドラーへ渡す
	cart := api.Group("/cart")
	{
		cart.GET("", h.Gate.Guard(h.Cart.Get))
		cart.POST("/add", h.Gate.Guard(h.Cart.Add))
		cart.PATCH("/update", h.Gate.Guard(h.Cart.Update))
		cart.DELETE("/remove", h.Gate.Guard(h.Cart.Remove))
		cart.DELETE("/clear", h.Gate.Guard(h.Cart.Clear))
	}
	api.POST("/checkout/create-session", h.Gate.Guard(h.Checkout.CreateSession))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
