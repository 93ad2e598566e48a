package core

import (
	"fmt"
	"io/fs"
	"strings"
)

// StaticAssetPath converts the remainder of a /static/ URL into a path
// inside the static directory.
func StaticAssetPath(urlPath string) (string, error) {
	name := strings.TrimPrefix(urlPath, "/")
	if name == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if strings.HasSuffix(name, "/") {
		return "", fmt.Errorf("path cannot name a directory")
	}

	if strings.Contains(name, `\`) {
		return "", fmt.Errorf("path cannot contain backslashes")
	}

	if !fs.ValidPath(name) {
		return "", fmt.Errorf("path must be a clean relative path")
	}

	return name, nil
}
