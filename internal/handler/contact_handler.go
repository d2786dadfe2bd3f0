package handler

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/service"
	"github.com/devfolio/site/pkg/auth"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	messages service.MessageService
	secret   []byte
}

func NewContactHandler(messages service.MessageService, secret []byte) *ContactHandler {
	return &ContactHandler{messages: messages, secret: secret}
}

// Submit handles POST /contact. All fields are optional; missing ones are
// stored as empty text. There is no duplicate-submission detection.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	msg := &model.Message{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}

	if err := h.messages.Submit(r.Context(), msg); err != nil {
		slog.Error("contact submit failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetFlash(w, h.secret, "success", "Message sent successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
