package core

import (
	"path/filepath"
	"strings"
)

type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindScript
	KindMarkup
)

func (k ElementKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

var elementKinds = map[string]ElementKind{
	".mjs":  KindScript,
	".js":   KindScript,
	".html": KindMarkup,
}

// ClassifyElement reports how a file under the elements root is turned into
// a registry entry. Extensions are matched case-insensitively. A name made
// only of an extension (".html", ".js") has no stem and is not an element.
func ClassifyElement(filename string) ElementKind {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return KindUnknown
	}
	return elementKinds[strings.ToLower(ext)]
}

// WrapMarkup turns raw element markup into the source of a template function
// taking {html, state}. The content is spliced into the template literal
// as-is: backticks and ${} belong to the renderer's templating syntax.
func WrapMarkup(content string) string {
	return "function ({html, state}){return html`" + content + "`}"
}

// ElementSource returns the registry value for a file of the given kind.
func ElementSource(kind ElementKind, content []byte) (string, bool) {
	switch kind {
	case KindScript:
		return string(content), true
	case KindMarkup:
		return WrapMarkup(string(content)), true
	default:
		return "", false
	}
}

type Element struct {
	Key    string
	Kind   ElementKind
	Path   string
	Source string
}

// ElementRegistry maps element keys to template sources. It is encoded as the
// "elements" object of a render request.
type ElementRegistry map[string]string
