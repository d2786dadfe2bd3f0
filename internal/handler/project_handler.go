package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/repository"
	"github.com/devfolio/site/internal/service"
	"github.com/devfolio/site/pkg/auth"
)

const maxUploadMemory = 10 << 20 // 10 MB

// ProjectHandler handles the public project listing and the admin project
// management pages.
type ProjectHandler struct {
	projects service.ProjectService
	secret   []byte
	render   *Renderer
}

func NewProjectHandler(projects service.ProjectService, secret []byte, render *Renderer) *ProjectHandler {
	return &ProjectHandler{projects: projects, secret: secret, render: render}
}

// PublicList handles GET /projects.
func (h *ProjectHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listLimits(r)
	projects, err := h.projects.List(r.Context(), model.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		slog.Error("project list failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render.Render(w, r, "projects.html", map[string]any{
		"Title":    "Projects",
		"Projects": projects,
	})
}

// AdminList handles GET /admin/projects.
func (h *ProjectHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listLimits(r)
	projects, err := h.projects.List(r.Context(), model.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		slog.Error("project list failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render.Render(w, r, "admin_projects.html", map[string]any{
		"Title":    "Admin Projects",
		"Projects": projects,
	})
}

// Create handles POST /admin/projects. The three screenshot slots are read
// in order; empty slots are skipped, so slot order among the submitted files
// is preserved.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		auth.SetFlash(w, h.secret, "danger", "Upload too large!")
		http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
		return
	}

	var uploads []service.Upload
	var openFiles []multipart.File
	defer func() {
		for _, f := range openFiles {
			_ = f.Close()
		}
	}()
	for i := 1; i <= service.MaxScreenshots; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("screenshot%d", i))
		if err != nil {
			continue // empty slot
		}
		openFiles = append(openFiles, file)
		uploads = append(uploads, service.Upload{Filename: header.Filename, Data: file})
	}

	if _, err := h.projects.Create(r.Context(), r.FormValue("title"), r.FormValue("description"), uploads); err != nil {
		slog.Error("project create failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetFlash(w, h.secret, "success", "Project added successfully!")
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// Delete handles POST /admin/projects/delete/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.projects.Delete(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		auth.SetFlash(w, h.secret, "danger", "Project not found.")
	case err != nil:
		slog.Error("project delete failed", "error", err, "project_id", id)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		auth.SetFlash(w, h.secret, "success", "Project deleted successfully.")
	}
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}
