package usecase

import (
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/3-lines-studio/enhance/internal/core"
)

type ScanInput struct {
	Root string
}

type ScanOutput struct {
	Registry core.ElementRegistry
	// Elements holds the entries that made it into Registry, sorted by key.
	Elements []core.Element
	Error    error
}

type RegistryService struct {
	fs     FileSystem
	logger *slog.Logger
}

func NewRegistryService(fs FileSystem, logger *slog.Logger) *RegistryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RegistryService{
		fs:     fs,
		logger: logger,
	}
}

// Scan walks input.Root and builds the element registry. Files with an
// unrecognised extension are skipped. A missing or unreadable root, or any
// unreadable file or directory below it, fails the whole scan.
func (s *RegistryService) Scan(input ScanInput) ScanOutput {
	root := input.Root
	if root == "" {
		return ScanOutput{Error: fmt.Errorf("%w: no directory configured", core.ErrElementsDir)}
	}

	byKey := make(map[string]core.Element)
	visitedRoot := false
	walkRoot := root

	err := s.fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !visitedRoot {
			visitedRoot = true
			walkRoot = path
			if !d.IsDir() {
				return fmt.Errorf("%s is not a directory", root)
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		kind := core.ClassifyElement(d.Name())
		if kind == core.KindUnknown {
			s.logger.Debug("skipping unrecognised element file", "path", path)
			return nil
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		content, err := s.fs.ReadFile(path)
		if err != nil {
			return err
		}

		source, _ := core.ElementSource(kind, content)
		element := core.Element{
			Key:    core.ElementKeyForPath(rel),
			Kind:   kind,
			Path:   rel,
			Source: source,
		}

		if prev, ok := byKey[element.Key]; ok {
			s.logger.Warn("element key collision, keeping the later file",
				"key", element.Key,
				"replaced", prev.Path,
				"kept", element.Path,
			)
		}
		byKey[element.Key] = element
		return nil
	})
	if err != nil {
		return ScanOutput{Error: fmt.Errorf("%w: %w", core.ErrElementsDir, err)}
	}

	registry := make(core.ElementRegistry, len(byKey))
	elements := make([]core.Element, 0, len(byKey))
	for key, element := range byKey {
		registry[key] = element.Source
		elements = append(elements, element)
	}
	slices.SortFunc(elements, func(a, b core.Element) int {
		return strings.Compare(a.Key, b.Key)
	})

	s.logger.Debug("element registry built", "root", root, "elements", len(registry))

	return ScanOutput{
		Registry: registry,
		Elements: elements,
	}
}
