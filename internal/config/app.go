package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/contactmind/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"MIND_RUNTIME_PATH" envDefault:".contactmind"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Offline queue replay cadence
	SyncIntervalSeconds int `env:"SYNC_INTERVAL_SECONDS" envDefault:"60"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "contactmind.db")
}

func (c AppConfig) GetExportPath() string {
	return filepath.Join(c.RuntimePath, "exports")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
