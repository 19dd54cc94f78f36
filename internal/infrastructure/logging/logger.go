package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger はzerologのLoggerを返す。
// APP_ENV=dev (development) の場合は人が読みやすいコンソール出力にする
func NewLogger(env, level string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Setup はパッケージ共通のグローバルロガーを差し替える
func Setup(env, level string) zerolog.Logger {
	l := NewLogger(env, level)
	log.Logger = l
	zerolog.SetGlobalLevel(l.GetLevel())
	return l
}
