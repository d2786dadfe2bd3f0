package handler

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/service"
)

// DashboardHandler renders the admin message dashboard.
type DashboardHandler struct {
	messages service.MessageService
	render   *Renderer
}

func NewDashboardHandler(messages service.MessageService, render *Renderer) *DashboardHandler {
	return &DashboardHandler{messages: messages, render: render}
}

// Dashboard handles GET /admin. Gating happens in the RequireAdmin
// middleware; by the time we are here the session is valid.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	limit, offset := listLimits(r)
	messages, err := h.messages.List(r.Context(), model.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		slog.Error("message list failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":    "Admin Messages",
		"Messages": messages,
	}
	// A full page means there may be older messages behind it.
	if len(messages) == limit {
		data["NextOffset"] = offset + limit
	}
	h.render.Render(w, r, "admin.html", data)
}
