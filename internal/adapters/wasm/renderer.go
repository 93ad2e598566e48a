package wasm

import (
	"context"
	"fmt"
	"os"
	"sync"

	extism "github.com/extism/go-sdk"

	"github.com/3-lines-studio/enhance/internal/core"
)

const DefaultEntryPoint = "ssr"

// Renderer runs the SSR engine compiled to a WebAssembly module. The module
// is loaded once and reused; calls are serialised because an extism plugin
// instance is not safe for concurrent use.
type Renderer struct {
	mu      sync.Mutex
	call    core.CallFunc
	cleanup func() error
}

func NewRenderer(modulePath string, entryPoint string) (*Renderer, error) {
	if entryPoint == "" {
		entryPoint = DefaultEntryPoint
	}

	info, err := os.Stat(modulePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrRendererLoad, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", core.ErrRendererLoad, modulePath)
	}

	ctx := context.Background()
	manifest := extism.Manifest{
		Wasm: []extism.Wasm{
			extism.WasmFile{Path: modulePath},
		},
	}
	config := extism.PluginConfig{
		EnableWasi: true,
	}

	plugin, err := extism.NewPlugin(ctx, manifest, config, []extism.HostFunction{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrRendererLoad, modulePath, err)
	}

	if !plugin.FunctionExists(entryPoint) {
		_ = plugin.Close(ctx)
		return nil, fmt.Errorf("%w: %s does not export %q", core.ErrRendererLoad, modulePath, entryPoint)
	}

	call := func(input []byte) ([]byte, error) {
		exit, output, err := plugin.Call(entryPoint, input)
		if err != nil {
			return nil, fmt.Errorf("%s exited with code %d: %w", entryPoint, exit, err)
		}
		if exit != 0 {
			return nil, fmt.Errorf("%s exited with code %d", entryPoint, exit)
		}
		return output, nil
	}

	return newRenderer(call, func() error { return plugin.Close(ctx) }), nil
}

func newRenderer(call core.CallFunc, cleanup func() error) *Renderer {
	return &Renderer{
		call:    call,
		cleanup: cleanup,
	}
}

func (r *Renderer) Render(req core.RenderRequest) (core.RenderResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.call == nil {
		return core.RenderResult{}, fmt.Errorf("%w: renderer is closed", core.ErrRenderInvocation)
	}
	return core.Invoke(r.call, req)
}

func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.call = nil
	if r.cleanup == nil {
		return nil
	}
	err := r.cleanup()
	r.cleanup = nil
	return err
}
