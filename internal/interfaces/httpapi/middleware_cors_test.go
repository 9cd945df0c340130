package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dashboardOrigin = "https://ipl-dashboard.example.com"

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantVary    string
		wantHeaders bool
	}{
		{
			name:        "configured origin is echoed",
			allowed:     []string{" ", dashboardOrigin},
			method:      http.MethodGet,
			origin:      dashboardOrigin,
			wantStatus:  http.StatusOK,
			wantOrigin:  dashboardOrigin,
			wantVary:    "Origin",
			wantHeaders: true,
		},
		{
			name:        "wildcard preflight short circuits",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      dashboardOrigin,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantHeaders: true,
		},
		{
			name:       "unknown origin gets no grant",
			allowed:    []string{"https://allowed.example.com"},
			method:     http.MethodGet,
			origin:     "https://not-allowed.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "request without origin passes through",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := CORS(tc.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(tc.method, "/v1/standings", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.wantVary, rec.Header().Get("Vary"))
			if tc.wantHeaders {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), adminTokenHeader)
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
