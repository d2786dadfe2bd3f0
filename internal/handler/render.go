package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/devfolio/site/pkg/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"index.html",
	"projects.html",
	"admin_login.html",
	"admin.html",
	"admin_projects.html",
}

// Renderer executes the embedded page templates over the shared layout and
// injects the pending flash notification, if any.
type Renderer struct {
	pages  map[string]*template.Template
	secret []byte
}

// NewRenderer parses every page template against the layout.
func NewRenderer(secret []byte) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, secret: secret}, nil
}

// Render writes the named page. data may be nil; the flash slot is always
// filled from (and clears) the pending flash cookie.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	t, ok := rd.pages[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Portfolio"
	}
	data["Flash"] = auth.PopFlash(w, r, rd.secret)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template execute failed", "page", page, "error", err)
	}
}
