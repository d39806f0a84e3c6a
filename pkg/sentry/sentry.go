package sentry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/d60-Lab/gin-news/config"
)

// Init 配置了 DSN 时启用错误上报，返回的函数用于退出前刷新
func Init(cfg config.SentryConfig) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		AttachStacktrace: true,
	}); err != nil {
		return nil, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}
