package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crucial707/codepad/internal/auth"
	"github.com/crucial707/codepad/internal/middleware"
	"github.com/go-chi/chi/v5"
)

const (
	aliceID   = "6f1c2a8e-3b1d-4c55-9a63-2f0d7e1b9c01"
	projectID = "0b8f3c44-7d2e-4a9b-8e61-5c3f2a1d9e77"
)

var (
	userCols    = []string{"id", "username", "email", "password_hash", "created_at"}
	projectCols = []string{"id", "name", "owner_id", "html_code", "css_code", "js_code", "created_at", "updated_at"}
)

func requestWithChiURLParams(method, path string, body []byte, params map[string]string) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	return r
}

// asUser attaches claims the way JWTMiddleware would.
func asUser(r *http.Request, ownerID string) *http.Request {
	return r.WithContext(middleware.WithClaims(r.Context(), &auth.Claims{OwnerID: ownerID, Username: "alice"}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeBody(t *testing.T, body io.Reader, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errorMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var out map[string]interface{}
	decodeBody(t, body, &out)
	msg, _ := out["error"].(string)
	return msg
}
