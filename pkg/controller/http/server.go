package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/plugin"
)

type Server struct {
	router   *chi.Mux
	manifest []byte
	logo     []byte
	openAPI  []byte
}

type Options func(*Server)

// WithManifest serves data as the plugin manifest.
func WithManifest(data []byte) Options {
	return func(s *Server) {
		s.manifest = data
	}
}

// WithLogo serves data as the PNG plugin logo.
func WithLogo(data []byte) Options {
	return func(s *Server) {
		s.logo = data
	}
}

// WithOpenAPI serves data as the YAML OpenAPI document.
func WithOpenAPI(data []byte) Options {
	return func(s *Server) {
		s.openAPI = data
	}
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler)
	r.Get("/search", searchHandler(uc))

	if s.manifest != nil {
		r.Get(plugin.ManifestPath, assetHandler(s.manifest, "application/json"))
	}
	if s.logo != nil {
		r.Get(plugin.LogoPath, assetHandler(s.logo, "image/png"))
	}
	if s.openAPI != nil {
		r.Get(plugin.OpenAPIPath, assetHandler(s.openAPI, "application/yaml"))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
