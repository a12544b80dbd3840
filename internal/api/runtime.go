package api

import (
	"github.com/ombaa/ombaa/internal/config"
	"github.com/ombaa/ombaa/internal/infrastructure"
	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Auth       *users.Authenticator
	Matching   config.MatchingConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Auth:       users.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.TokenTTLDuration()),
		Matching:   cfg.Matching,
	}
}
