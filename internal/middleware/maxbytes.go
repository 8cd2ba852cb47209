package middleware

import (
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies at 5 MiB; a project carries three source blobs.
const DefaultMaxBodyBytes = 5 << 20

// MaxBytes caps request bodies. A declared Content-Length over the cap is rejected up
// front with 400; otherwise reads past the cap fail and the JSON handlers answer 400.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeJSONError(w, "request body too large", http.StatusBadRequest)
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
