package handler

import "net/http"

// HomeHandler renders the public home page.
type HomeHandler struct {
	render *Renderer
}

func NewHomeHandler(render *Renderer) *HomeHandler {
	return &HomeHandler{render: render}
}

// Home handles GET /.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, "index.html", nil)
}
