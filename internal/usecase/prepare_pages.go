package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/3-lines-studio/enhance/internal/core"
)

type PrepareInput struct {
	ElementsDir  string
	Markup       string
	InitialState map[string]any
}

type PrepareOutput struct {
	Pages          *core.Pages
	Elements       []core.Element
	Result         core.RenderResult
	RenderDuration time.Duration
	Error          error
}

// PageService runs the startup pipeline: scan elements, assemble the
// request, render once, compose both pages.
type PageService struct {
	registry *RegistryService
	renderer Renderer
	logger   *slog.Logger
}

func NewPageService(registry *RegistryService, renderer Renderer, logger *slog.Logger) *PageService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageService{
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *PageService) Prepare(input PrepareInput) PrepareOutput {
	if s.renderer == nil {
		return PrepareOutput{Error: fmt.Errorf("%w: no renderer configured", core.ErrRendererLoad)}
	}

	scan := s.registry.Scan(ScanInput{Root: input.ElementsDir})
	if scan.Error != nil {
		return PrepareOutput{Error: scan.Error}
	}
	s.logger.Info("elements loaded", "dir", input.ElementsDir, "count", len(scan.Registry))

	req := core.NewRenderRequest(input.Markup, input.InitialState, scan.Registry)

	start := time.Now()
	result, err := s.renderer.Render(req)
	elapsed := time.Since(start)
	if err != nil {
		return PrepareOutput{Elements: scan.Elements, Error: err}
	}
	s.logger.Info("page rendered",
		"duration", elapsed.Round(time.Microsecond),
		"document_bytes", len(result.Document),
		"body_bytes", len(result.Body),
		"styles_bytes", len(result.Styles),
	)
	if result.Document == "" {
		s.logger.Warn("renderer returned no document; the primary page will be empty")
	}

	return PrepareOutput{
		Pages:          core.ComposePages(result),
		Elements:       scan.Elements,
		Result:         result,
		RenderDuration: elapsed,
	}
}
