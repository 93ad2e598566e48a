package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/enhance/internal/core"
)

type ExportInput struct {
	OutDir string
	Pages  *core.Pages
}

type ExportOutput struct {
	Files []string
	Error error
}

type ExportService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewExportService(fs FileSystem, cli CLIOutput) *ExportService {
	return &ExportService{
		fs:  fs,
		cli: cli,
	}
}

// ExportPages writes each page to <out>/<route>/index.html so the directory
// can be served by any static file server under the same paths.
func (s *ExportService) ExportPages(input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("missing output directory")}
	}
	if input.Pages == nil {
		return ExportOutput{Error: fmt.Errorf("no pages to export")}
	}

	pages := []struct {
		route string
		html  string
	}{
		{core.RoutePrimary, input.Pages.Primary()},
		{core.RouteConstructed, input.Pages.Constructed()},
	}

	var files []string
	for _, page := range pages {
		dir := filepath.Join(input.OutDir, filepath.FromSlash(strings.TrimPrefix(page.route, "/")))
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("failed to create %s: %w", dir, err)}
		}

		target := filepath.Join(dir, "index.html")
		if err := s.fs.WriteFile(target, []byte(page.html), 0o644); err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("failed to write %s: %w", target, err)}
		}

		files = append(files, target)
		if s.cli != nil {
			s.cli.PrintFile(target)
		}
	}

	return ExportOutput{Files: files}
}
