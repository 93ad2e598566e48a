package core

import "errors"

var (
	ErrElementsDir           = errors.New("elements directory unavailable")
	ErrRendererLoad          = errors.New("renderer module could not be loaded")
	ErrRenderInvocation      = errors.New("renderer invocation failed")
	ErrMalformedRenderResult = errors.New("malformed render result")
)
