// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret は開発用の署名シークレットです。本番環境では必ず JWT_SECRET で上書きすること。
const DefaultJWTSecret = "your-super-secret-jwt-key-change-in-production"

// DefaultStripeKey はプレースホルダーのStripeシークレットキーです。
const DefaultStripeKey = "sk_test_your_key_here"

// Config はプロセス起動時に一度だけ読み込まれ、以降は変更されません。
type Config struct {
	AppEnv   string
	LogLevel string
	HTTPAddr string

	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig

	Stripe StripeConfig

	// FrontendURL はOriginヘッダーがない場合のチェックアウト戻り先です。
	FrontendURL string
	CORSOrigins []string

	// StrictCartUpdate が true の場合、存在しないカート行の数量更新は not found になります。
	StrictCartUpdate bool
	ProductCacheTTL  time.Duration

	// AuthRateLimit はIPごとにAuthRateWindow内で許可するログイン・登録の回数です。
	// デフォルトは0（無効）で、明示的に設定した場合のみ有効になります。
	AuthRateLimit  int
	AuthRateWindow time.Duration
	// TrustedProxies はX-Forwarded-Forを信用するプロキシのIP/CIDRです。空ならどのヘッダーも信用しません。
	TrustedProxies []string
}

// DBConfig はデータベース接続設定です。
type DBConfig struct {
	Driver        string // "sqlite" or "postgres"
	DSN           string
	ConnTimeout   time.Duration
	RunMigrations bool
	SeedData      bool
}

// RedisConfig は任意のキャッシュ用Redis接続設定です。Hostが空ならRedisは使用しません。
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr は host:port 形式のアドレスを返します。
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Enabled はRedisが設定されているかを返します。
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// JWTConfig はトークン署名の設定です。
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// UsesDefaultSecret は開発用のデフォルトシークレットが使われているかを返します。
func (j JWTConfig) UsesDefaultSecret() bool {
	return j.Secret == DefaultJWTSecret
}

// StripeConfig は決済プロバイダーの設定です。
type StripeConfig struct {
	SecretKey string
	// APIURL はstripe-mockやテスト用サーバーを指す場合のみ設定します。
	APIURL  string
	Timeout time.Duration
}

// Load は環境変数から設定を読み込みます。未設定の項目はデフォルト値になります。
func Load() Config {
	driver := getEnv("DB_DRIVER", "sqlite")
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPAddr: getEnv("HTTP_ADDR", ":3001"),
		DB: DBConfig{
			Driver:        driver,
			DSN:           getEnv("DB_DSN", "shop.db"),
			ConnTimeout:   getEnvDuration("DB_CONN_TIMEOUT", 60*time.Second),
			RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
			SeedData:      getEnvBool("SEED_DATA", true),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", DefaultJWTSecret),
			TTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", DefaultStripeKey),
			APIURL:    os.Getenv("STRIPE_API_URL"),
			Timeout:   getEnvDuration("STRIPE_TIMEOUT", 10*time.Second),
		},
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		CORSOrigins:      getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		StrictCartUpdate: getEnvBool("CART_STRICT_UPDATE", false),
		ProductCacheTTL:  getEnvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		AuthRateLimit:    getEnvInt("AUTH_RATE_LIMIT", 0),
		AuthRateWindow:   getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
		TrustedProxies:   getEnvList("TRUSTED_PROXIES", nil),
	}
}

// Validate は起動を続行できない設定値を検出します。
func (c Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be > 0, got %s", c.JWT.TTL))
	}
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver))
	}
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("DB_DSN must not be empty"))
	}
	if c.AuthRateLimit > 0 && c.AuthRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("AUTH_RATE_WINDOW must be > 0, got %s", c.AuthRateWindow))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	return errors.Join(errs...)
}

// IsProduction は本番環境で動作しているかを返します。
func (c Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
