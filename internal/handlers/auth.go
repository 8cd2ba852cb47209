package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/metrics"
	"github.com/crucial707/codepad/internal/middleware"
	"github.com/crucial707/codepad/internal/service"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Auth   *service.AuthService
	Logger *slog.Logger
}

func (h *AuthHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// ==========================
// Register
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := decodeJSON(r, &input); err != nil {
		writeDecodeError(w, err)
		return
	}
	if fields := missingFields(input); len(fields) > 0 {
		metrics.IncAuthEvent("register", "invalid")
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Register(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		metrics.IncAuthEvent("register", "error")
		h.logger().Warn("register failed", "email", input.Email, "err", err)
		JSONError(w, "failed to register user", http.StatusBadRequest)
		return
	}

	metrics.IncAuthEvent("register", "ok")
	h.logger().Info("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user registered successfully"})
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := decodeJSON(r, &input); err != nil {
		writeDecodeError(w, err)
		return
	}
	if fields := missingFields(input); len(fields) > 0 {
		metrics.IncAuthEvent("login", "invalid")
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Login(r.Context(), input.Email, input.Password)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrNotFound):
		metrics.IncAuthEvent("login", "not_found")
		JSONError(w, "user not found", http.StatusNotFound)
		return
	case errors.Is(err, common.ErrInvalidCredentials):
		metrics.IncAuthEvent("login", "bad_credentials")
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	default:
		metrics.IncAuthEvent("login", "error")
		h.logger().Error("login failed", "err", err)
		JSONError(w, "login failed", http.StatusBadRequest)
		return
	}

	metrics.IncAuthEvent("login", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ==========================
// Protected
// ==========================

// Protected confirms that the presented token is valid.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		JSONError(w, "access denied", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "access granted for " + claims.Username,
	})
}
