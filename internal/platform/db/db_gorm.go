// Package db はGORMによるデータベース接続、マイグレーション、初期データ投入を提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shop_backend/internal/platform/config"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// NewOpener はドライバー名に対応するOpenerを返します。
// TranslateErrorを有効にし、一意制約違反を gorm.ErrDuplicatedKey として扱えるようにします。
func NewOpener(driver string) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case "sqlite":
		dialect = sqlite.Open
	case "postgres":
		dialect = postgres.Open
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
	}, nil
}

// ConnectWithRetry はタイムアウトに達するまで一定間隔で接続を再試行します。
// DBコンテナの起動待ちを想定しています。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従ってデータベースへ接続し、必要であればマイグレーションを実行します。
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(cfg.DSN, cfg.ConnTimeout, opener)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		// SQLiteは書き込みが直列化されるため接続を1本に絞る
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	slog.Info("database ready", "driver", cfg.Driver, "migrations", cfg.RunMigrations)
	return db, nil
}

// Close は下層のsql.DBを閉じます。
func Close(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
