package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/middleware"
	"github.com/crucial707/codepad/internal/repo"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Repo   *repo.UserRepo
	Logger *slog.Logger
}

// ==========================
// Me
// ==========================

// Me returns the account behind the presented token. The password digest is never serialized.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, "access denied", http.StatusUnauthorized)
		return
	}

	user, err := h.Repo.GetByID(r.Context(), userID)
	if errors.Is(err, common.ErrNotFound) {
		JSONError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("load current user failed", "user_id", userID, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
