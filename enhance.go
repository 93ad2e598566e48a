package enhance

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/3-lines-studio/enhance/internal/adapters/config"
	"github.com/3-lines-studio/enhance/internal/adapters/fs"
	adhttp "github.com/3-lines-studio/enhance/internal/adapters/http"
	"github.com/3-lines-studio/enhance/internal/adapters/wasm"
	"github.com/3-lines-studio/enhance/internal/core"
	"github.com/3-lines-studio/enhance/internal/usecase"
)

type Config = config.Config

type Pages = core.Pages

type Element = core.Element

type RenderRequest = core.RenderRequest

type RenderResult = core.RenderResult

type Renderer = core.Renderer

var (
	ErrElementsDir           = core.ErrElementsDir
	ErrRendererLoad          = core.ErrRendererLoad
	ErrRenderInvocation      = core.ErrRenderInvocation
	ErrMalformedRenderResult = core.ErrMalformedRenderResult
)

func DefaultConfig() Config {
	return config.Default()
}

func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

type Option func(*options)

type options struct {
	logger     *slog.Logger
	renderer   Renderer
	elementsFS iofs.FS
	staticFS   iofs.FS
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRenderer replaces the WebAssembly engine. The App does not close a
// renderer supplied this way.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithElementsFS reads Config.ElementsDir from fsys instead of the OS.
func WithElementsFS(fsys iofs.FS) Option {
	return func(o *options) { o.elementsFS = fsys }
}

// WithStaticFS serves /static/ from fsys instead of Config.StaticDir.
func WithStaticFS(fsys iofs.FS) Option {
	return func(o *options) { o.staticFS = fsys }
}

// App holds the pages rendered at startup. Nothing in it changes after New
// returns; element or state changes need a new App.
type App struct {
	pages    *core.Pages
	elements []core.Element
	static   iofs.FS
	metrics  *adhttp.Metrics
	logger   *slog.Logger
	closer   func() error
}

// New scans the elements, renders them once and composes both pages. Any
// failure is returned; the caller decides whether to exit.
func New(cfg Config, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{
		metrics: adhttp.NewMetrics(),
		logger:  o.logger,
		closer:  func() error { return nil },
	}

	renderer := o.renderer
	if renderer == nil {
		r, err := wasm.NewRenderer(cfg.RendererPath, cfg.EntryPoint)
		if err != nil {
			return nil, err
		}
		o.logger.Info("renderer loaded", "module", cfg.RendererPath, "entry", cfg.EntryPoint)
		renderer = r
		app.closer = r.Close
	}

	var elementsFS usecase.FileSystem = fs.NewOSFileSystem()
	if o.elementsFS != nil {
		elementsFS = fs.NewIOFileSystem(o.elementsFS)
	}

	registry := usecase.NewRegistryService(elementsFS, o.logger)
	service := usecase.NewPageService(registry, renderer, o.logger)

	out := service.Prepare(usecase.PrepareInput{
		ElementsDir:  cfg.ElementsDir,
		Markup:       cfg.Markup,
		InitialState: cfg.InitialState,
	})
	if out.Error != nil {
		return nil, errors.Join(out.Error, app.closer())
	}

	app.pages = out.Pages
	app.elements = out.Elements
	app.metrics.ObserveStartup(
		len(out.Elements),
		out.RenderDuration,
		len(out.Pages.Primary()),
		len(out.Pages.Constructed()),
	)

	app.static = o.staticFS
	if app.static == nil {
		if !fs.NewOSFileSystem().FileExists(cfg.StaticDir) {
			o.logger.Warn("static directory unavailable", "dir", cfg.StaticDir)
		}
		app.static = os.DirFS(cfg.StaticDir)
	}

	return app, nil
}

func (a *App) Pages() *Pages {
	return a.pages
}

// Elements lists the registry entries sorted by key.
func (a *App) Elements() []Element {
	return a.elements
}

func (a *App) Handler() http.Handler {
	return adhttp.NewRouter(adhttp.RouterConfig{
		Pages:   a.pages,
		Static:  a.static,
		Metrics: a.metrics,
		Logger:  a.logger,
	})
}

func (a *App) Close() error {
	return a.closer()
}
