package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementKeyForPath(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{"file at root", "name.js", "name"},
		{"markup at root", "header.html", "header"},
		{"one directory", "utils/format.js", "utils-format"},
		{"nested directories", "sub/dir/name.html", "sub-dir-name"},
		{"module script", "lib/store.mjs", "lib-store"},
		{"windows separators", `sub\dir\name.html`, "sub-dir-name"},
		{"mixed separators", `sub\dir/name.html`, "sub-dir-name"},
		{"leading dot slash", "./name.js", "name"},
		{"leading slash", "/name.js", "name"},
		{"doubled separator", "sub//name.js", "sub-name"},
		{"only last extension stripped", "vendor/lib.min.js", "vendor-lib.min"},
		{"hyphenated directory", "my-app/my-card.html", "my-app-my-card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElementKeyForPath(tt.relPath))
		})
	}
}

func TestElementKeyForPathNoStraySeparator(t *testing.T) {
	for _, relPath := range []string{"name.html", "./name.html", "/name.html"} {
		key := ElementKeyForPath(relPath)
		assert.NotContains(t, key, "-", relPath)
	}
}

func TestElementKeyForPathDistinctPaths(t *testing.T) {
	paths := []string{
		"a.html",
		"a/b.html",
		"b/a.html",
		"a/b/c.html",
		"x/y/z.js",
		"x/z.js",
		"card.mjs",
	}

	seen := make(map[string]string)
	for _, p := range paths {
		key := ElementKeyForPath(p)
		if prev, ok := seen[key]; ok {
			t.Errorf("key %q derived from both %q and %q", key, prev, p)
		}
		seen[key] = p
	}
}

func TestElementKeyForPathSameStemCollides(t *testing.T) {
	assert.Equal(t, ElementKeyForPath("cards/item.html"), ElementKeyForPath("cards/item.js"))
}

func TestElementKeyForPathHyphenatedNameCollides(t *testing.T) {
	assert.Equal(t, "a-b", ElementKeyForPath("a-b.html"))
	assert.Equal(t, "a-b", ElementKeyForPath("a/b.html"))
}
