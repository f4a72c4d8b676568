package handler

import "net/http"

const indexHTML = `<!DOCTYPE html>
<html>
  <body>
    <h1>Inkwell API</h1>
    <p>A small blogging backend. See /posts for the public listing.</p>
  </body>
</html>
`

// Index serves a tiny landing page at the root path.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexHTML))
}
