package core

import (
	"fmt"
)

const (
	StylesheetHref = "/static/index.css"
	ScriptSrc      = "/static/index.js"
)

// Pages holds the two documents served after startup. It has no setters;
// share it by pointer.
type Pages struct {
	primary     string
	constructed string
}

func NewPages(primary, constructed string) *Pages {
	return &Pages{primary: primary, constructed: constructed}
}

// Primary is the engine's own document, verbatim.
func (p *Pages) Primary() string {
	return p.primary
}

// Constructed is the page rebuilt locally from the engine's body and styles.
func (p *Pages) Constructed() string {
	return p.constructed
}

func ComposePages(result RenderResult) *Pages {
	return NewPages(result.Document, RenderConstructedPage(result.Body, result.Styles))
}

// RenderConstructedPage wraps a rendered body and its collected styles in a
// fixed document shell. The style block is always emitted, even when empty.
func RenderConstructedPage(bodyHTML string, styles string) string {
	head := `<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`
	head += fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, StylesheetHref)

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    %s
    <style>%s</style>
  </head>
  <body>
    %s
    <script type="module" src="%s"></script>
  </body>
</html>
`, head, styles, bodyHTML, ScriptSrc)
}
