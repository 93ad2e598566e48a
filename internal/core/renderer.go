package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// RenderRequest is the payload handed to the SSR engine. Field names on the
// wire are fixed by the engine's ssr entry point.
type RenderRequest struct {
	Markup       string          `json:"markup"`
	InitialState map[string]any  `json:"initialState"`
	Elements     ElementRegistry `json:"elements"`
}

// RenderResult is the decoded engine output. Absent fields decode to "".
type RenderResult struct {
	Document string `json:"document"`
	Body     string `json:"body"`
	Styles   string `json:"styles"`
}

type Renderer interface {
	Render(req RenderRequest) (RenderResult, error)
}

// CallFunc sends an encoded request across the engine boundary and returns
// the engine's raw reply.
type CallFunc func(input []byte) ([]byte, error)

// NewRenderRequest assembles a request. The state and registry are copied so
// the caller cannot mutate the request afterwards. Markup is not validated.
func NewRenderRequest(markup string, initialState map[string]any, elements ElementRegistry) RenderRequest {
	state := maps.Clone(initialState)
	if state == nil {
		state = map[string]any{}
	}

	registry := maps.Clone(elements)
	if registry == nil {
		registry = ElementRegistry{}
	}

	return RenderRequest{
		Markup:       markup,
		InitialState: state,
		Elements:     registry,
	}
}

func EncodeRenderRequest(req RenderRequest) ([]byte, error) {
	if req.InitialState == nil {
		req.InitialState = map[string]any{}
	}
	if req.Elements == nil {
		req.Elements = ElementRegistry{}
	}
	return json.Marshal(req)
}

func ParseRenderResult(data []byte) (RenderResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return RenderResult{}, fmt.Errorf("%w: expected an object, got %q", ErrMalformedRenderResult, trimmed)
	}

	var result RenderResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return RenderResult{}, fmt.Errorf("%w: %v", ErrMalformedRenderResult, err)
	}
	return result, nil
}

// Invoke encodes req, hands it to call and decodes the reply.
func Invoke(call CallFunc, req RenderRequest) (RenderResult, error) {
	input, err := EncodeRenderRequest(req)
	if err != nil {
		return RenderResult{}, fmt.Errorf("%w: encoding request: %v", ErrRenderInvocation, err)
	}

	output, err := call(input)
	if err != nil {
		return RenderResult{}, fmt.Errorf("%w: %w", ErrRenderInvocation, err)
	}

	return ParseRenderResult(output)
}
