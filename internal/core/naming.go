package core

import (
	"path"
	"strings"
)

// ElementKeyForPath derives the registry key of an element from its path
// relative to the elements root. Parent directories are joined with "-" and
// prefixed to the file stem: "sub/dir/name.html" becomes "sub-dir-name",
// "name.js" stays "name".
//
// Distinct paths can derive the same key in two ways: files that share a
// directory and a stem ("card.html", "card.js"), and a flat name that spells
// out a nested one ("a-b.html", "a/b.html"). The registry keeps whichever is
// processed last.
func ElementKeyForPath(relPath string) string {
	name := strings.ReplaceAll(relPath, `\`, "/")
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")

	dir, base := path.Split(name)
	stem := strings.TrimSuffix(base, path.Ext(base))

	dir = strings.Trim(dir, "/")
	if dir == "" {
		return stem
	}
	return strings.ReplaceAll(dir, "/", "-") + "-" + stem
}
