package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyElement(t *testing.T) {
	tests := []struct {
		filename string
		want     ElementKind
	}{
		{"header.html", KindMarkup},
		{"HEADER.HTML", KindMarkup},
		{"format.js", KindScript},
		{"store.mjs", KindScript},
		{"README.md", KindUnknown},
		{"styles.css", KindUnknown},
		{"page.htm", KindUnknown},
		{"Makefile", KindUnknown},
		{".html", KindUnknown},
		{".js", KindUnknown},
		{"d/.mjs", KindUnknown},
		{"x.html", KindMarkup},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyElement(tt.filename))
		})
	}
}

func TestWrapMarkup(t *testing.T) {
	assert.Equal(t, "function ({html, state}){return html`Hello`}", WrapMarkup("Hello"))
}

// unwrapWithIdentity plays the role of a tagged-template renderer that
// returns the literal text of its template unchanged.
func unwrapWithIdentity(t *testing.T, source string) string {
	t.Helper()

	const prefix = "function ({html, state}){return html`"
	const suffix = "`}"

	require.True(t, strings.HasPrefix(source, prefix), "missing template prefix: %s", source)
	require.True(t, strings.HasSuffix(source, suffix), "missing template suffix: %s", source)

	return strings.TrimSuffix(strings.TrimPrefix(source, prefix), suffix)
}

func TestWrapMarkupRoundTrip(t *testing.T) {
	contents := []string{
		"<p>Hi</p>",
		"",
		"<style>:host{display:block}</style>\n<slot></slot>",
		"<p>${state.store.message}</p>",
		"<pre>`quoted`</pre>",
		"<a href=\"x\">&amp;</a>",
	}

	for _, content := range contents {
		assert.Equal(t, content, unwrapWithIdentity(t, WrapMarkup(content)))
	}
}

func TestElementSource(t *testing.T) {
	t.Run("script passes through", func(t *testing.T) {
		src, ok := ElementSource(KindScript, []byte("export const x=1;"))
		require.True(t, ok)
		assert.Equal(t, "export const x=1;", src)
	})

	t.Run("markup is wrapped", func(t *testing.T) {
		src, ok := ElementSource(KindMarkup, []byte("Hello"))
		require.True(t, ok)
		assert.Equal(t, "function ({html, state}){return html`Hello`}", src)
	})

	t.Run("unknown produces nothing", func(t *testing.T) {
		_, ok := ElementSource(KindUnknown, []byte("body {}"))
		assert.False(t, ok)
	})
}

func TestElementKindString(t *testing.T) {
	assert.Equal(t, "script", KindScript.String())
	assert.Equal(t, "markup", KindMarkup.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
