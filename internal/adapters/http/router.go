package http

import (
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/enhance/internal/core"
)

type RouterConfig struct {
	Pages   *core.Pages
	Static  iofs.FS
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewRouter mounts the two precomputed pages, the static directory and the
// operational endpoints.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pages := cfg.Pages
	if pages == nil {
		pages = core.NewPages("", "")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.GetHead)

	r.Get(core.RoutePrimary, NewPageHandler(pages.Primary()).ServeHTTP)
	r.Get(core.RouteConstructed, NewPageHandler(pages.Constructed()).ServeHTTP)
	r.Get(core.RouteStatic+"/*", http.StripPrefix(core.RouteStatic, NewAssetHandler(cfg.Static)).ServeHTTP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Handler().ServeHTTP)
	}

	return r
}
