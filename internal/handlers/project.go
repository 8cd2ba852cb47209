package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/metrics"
	"github.com/crucial707/codepad/internal/middleware"
	"github.com/crucial707/codepad/internal/models"
	"github.com/crucial707/codepad/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler serves the project routes. Every route sits behind JWTMiddleware.
type ProjectHandler struct {
	Projects *service.ProjectService
	Logger   *slog.Logger
}

func (h *ProjectHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// codeInput is the body of create and update. Missing fields decode as "".
type codeInput struct {
	HTMLCode string `json:"htmlCode"`
	CSSCode  string `json:"cssCode"`
	JSCode   string `json:"jsCode"`
}

func (in codeInput) code() models.ProjectCode {
	return models.ProjectCode{HTML: in.HTMLCode, CSS: in.CSSCode, JS: in.JSCode}
}

//
// ==========================
// List Projects
// ==========================
//

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, "access denied", http.StatusUnauthorized)
		return
	}

	projects, err := h.Projects.List(r.Context(), ownerID)
	if err != nil {
		metrics.IncProjectOp("list", "error")
		h.logger().Error("list projects failed", "owner_id", ownerID, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncProjectOp("list", "ok")
	writeJSON(w, http.StatusOK, projects)
}

//
// ==========================
// Get Project
// ==========================
//

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.Projects.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, "get", id, err)
		return
	}

	metrics.IncProjectOp("get", "ok")
	writeJSON(w, http.StatusOK, project)
}

//
// ==========================
// Create Project
// ==========================
//

// CreateProject stores a project owned by the caller. An owner field in the body is ignored.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, "access denied", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name string `json:"name" validate:"required"`
		codeInput
	}

	if err := decodeJSON(r, &input); err != nil {
		writeDecodeError(w, err)
		return
	}
	if fields := missingFields(input); len(fields) > 0 {
		metrics.IncProjectOp("create", "invalid")
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	project, err := h.Projects.Create(r.Context(), ownerID, input.Name, input.code())
	if err != nil {
		metrics.IncProjectOp("create", "error")
		h.logger().Warn("create project failed", "owner_id", ownerID, "err", err)
		JSONError(w, "failed to create project", http.StatusBadRequest)
		return
	}

	metrics.IncProjectOp("create", "ok")
	writeJSON(w, http.StatusCreated, project)
}

//
// ==========================
// Update Project
// ==========================
//

// UpdateProject replaces all three code fields. Omitted fields, or an empty body,
// clear the stored code.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input codeInput
	if err := decodeJSON(r, &input); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	project, err := h.Projects.Update(r.Context(), id, input.code())
	if err != nil {
		h.writeStoreError(w, "update", id, err)
		return
	}

	metrics.IncProjectOp("update", "ok")
	writeJSON(w, http.StatusOK, project)
}

//
// ==========================
// Delete Project
// ==========================
//

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Projects.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, "delete", id, err)
		return
	}

	metrics.IncProjectOp("delete", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

// writeStoreError maps a get/update/delete failure to 404 or 500.
func (h *ProjectHandler) writeStoreError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		metrics.IncProjectOp(op, "not_found")
		JSONError(w, "project not found", http.StatusNotFound)
		return
	}
	metrics.IncProjectOp(op, "error")
	h.logger().Error(op+" project failed", "project_id", id, "err", err)
	JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
}
