package api

import (
	"net/http"

	"github.com/docket-systems/docket/internal/config"
	"github.com/docket-systems/docket/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	groups := []routes.Group{
		domain.Processing.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	}

	if runtime.Archive != nil {
		handler := newArchiveHandler(runtime.Archive, runtime.Logger)
		groups = append(groups, handler.routes())
	}

	routes.Register(mux, groups...)
}
