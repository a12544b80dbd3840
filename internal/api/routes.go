package api

import (
	"fmt"
	"net/http"

	"github.com/ombaa/ombaa/internal/config"
	"github.com/ombaa/ombaa/pkg/openapi"
	"github.com/ombaa/ombaa/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	storage := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.Storage.MaxListSize,
	)

	specBytes, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	routes.Register(
		mux,
		domain.Users.Handler().Routes(),
		domain.Sites.Handler().Routes(),
		domain.Listings.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Matches.Handler().Routes(),
		domain.Directory.Handler().Routes(),
		storage.routes(),
	)

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
	return nil
}
