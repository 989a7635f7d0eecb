package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/guess-the-flag-bot/internal/config"
)

// New builds a JSON logger for production and a console logger otherwise.
// Every entry carries the environment name.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l.Named("flagbot").With(zap.String("env", cfg.Env)), nil
}
