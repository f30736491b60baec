package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/contactmind/pkg/log"
)

type BackendConfig struct {
	APIURL  string        `env:"MIND_API_URL" envDefault:"https://api.contactmind.app"`
	Token   string        `env:"MIND_API_TOKEN"`
	Timeout time.Duration `env:"MIND_API_TIMEOUT" envDefault:"30s"`
}

func NewBackendConfig(ctx context.Context) *BackendConfig {
	c := &BackendConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backend config")
	}
	return c
}
