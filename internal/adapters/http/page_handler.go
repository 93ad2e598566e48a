package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/3-lines-studio/enhance/internal/core"
)

// PageHandler serves one document computed at startup. It holds no mutable
// state, so a single instance serves any number of concurrent requests.
type PageHandler struct {
	html string
	etag string
}

func NewPageHandler(html string) http.Handler {
	return &PageHandler{
		html: html,
		etag: core.PageETag(html),
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", h.etag)
	http.ServeContent(w, req, "", time.Time{}, strings.NewReader(h.html))
}
