package http

import (
	"bytes"
	"io"
	iofs "io/fs"
	"net/http"

	"github.com/3-lines-studio/enhance/internal/core"
)

// AssetHandler serves files from the static directory. The request path is
// expected to have its mount prefix stripped already.
type AssetHandler struct {
	assets iofs.FS
}

func NewAssetHandler(assets iofs.FS) http.Handler {
	return &AssetHandler{assets: assets}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.assets == nil {
		http.NotFound(w, req)
		return
	}

	name, err := core.StaticAssetPath(req.URL.Path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	file, err := h.assets.Open(name)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	content, ok := file.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		content = bytes.NewReader(data)
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	http.ServeContent(w, req, info.Name(), info.ModTime(), content)
}
