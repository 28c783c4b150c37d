package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/codeseeker/pkg/controller/http"
	"github.com/secmon-lab/codeseeker/pkg/domain/mock"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/repository"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/secmon-lab/codeseeker/pkg/utils/request_id"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	t.Run("recover from panic", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(server.PanicRecoveryMiddleware)

		r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.S(t, rec.Body.String()).Contains(`"detail":"internal server error"`).NotContains("test panic")
	})

	t.Run("panic in use case", func(t *testing.T) {
		uc := &mock.SearchUsecasesMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string, limit int) (*repository.SearchResult, error) {
				panic("unexpected state")
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/search?query=x", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	var reqID string

	r := chi.NewRouter()
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.New(&buf, slog.LevelDebug, logging.FormatJSON, false)
			h.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logger)))
		})
	})
	r.Use(server.LoggingMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		reqID = request_id.FromContext(r.Context())
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest("GET", "/?query=tetris", nil)
	req.Header.Set("Authorization", "Bearer test_token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	gt.S(t, buf.String()).Contains(`"msg":"Access Log"`)
	gt.S(t, buf.String()).Contains(`"method":"GET"`)
	gt.S(t, buf.String()).Contains(`"path":"/"`)
	gt.S(t, buf.String()).Contains(`"status":200`)
	gt.S(t, buf.String()).Contains("tetris")
	gt.S(t, buf.String()).NotContains(`test_token`)
	gt.V(t, reqID).NotEqual("")
	gt.S(t, buf.String()).Contains(reqID)
}

func TestParseSearchParams(t *testing.T) {
	testCases := []struct {
		name    string
		target  string
		query   string
		limit   int
		wantErr bool
	}{
		{name: "default limit", target: "/search?query=go", query: "go", limit: 3},
		{name: "explicit limit", target: "/search?query=go&limit=10", query: "go", limit: 10},
		{name: "zero limit", target: "/search?query=go&limit=0", query: "go", limit: 0},
		{name: "empty query", target: "/search?query=", query: "", limit: 3},
		{name: "empty limit keeps default", target: "/search?query=go&limit=", query: "go", limit: 3},
		{name: "missing query", target: "/search", wantErr: true},
		{name: "non integer limit", target: "/search?query=go&limit=1.5", wantErr: true},
		{name: "negative limit", target: "/search?query=go&limit=-3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			query, limit, err := server.ParseSearchParams(req)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err).Required()
			gt.Equal(t, query, tc.query)
			gt.Equal(t, limit, tc.limit)
		})
	}
}

func TestCORS(t *testing.T) {
	srv := server.New(&mock.SearchUsecasesMock{},
		server.WithManifest([]byte(`{}`)),
	)

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/.well-known/ai-plugin.json", nil)
		req.Header.Set("Origin", "https://chat.openai.com")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.V(t, w.Header().Get("Access-Control-Allow-Origin")).NotEqual("")
		gt.Equal(t, w.Header().Get("Access-Control-Allow-Credentials"), "true")
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/search", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		gt.V(t, w.Header().Get("Access-Control-Allow-Origin")).NotEqual("")
		gt.S(t, w.Header().Get("Access-Control-Allow-Methods")).Contains(http.MethodGet)
		gt.V(t, w.Header().Get("Access-Control-Allow-Headers")).NotEqual("")
	})
}
