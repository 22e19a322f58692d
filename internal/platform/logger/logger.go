// Package logger はslogベースの構造化ロガーを構築します。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options はロガー生成時の設定です。
type Options struct {
	Service string
	Env     string
	Level   string
	// JSON が false の場合はテキスト形式で出力します（ローカル開発向け）。
	JSON      bool
	AddSource bool
	Output    io.Writer
}

// New はロガーを生成し、slogのデフォルトロガーとして設定します。
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	ho := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.AddSource,
	}

	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(out, ho)
	} else {
		h = slog.NewTextHandler(out, ho)
	}

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)
	slog.SetDefault(base)
	return base
}

// ParseLevel は文字列のログレベルをslog.Levelに変換します。不明な値はInfoになります。
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
