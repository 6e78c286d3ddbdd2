// Package server serves an injected documentation site locally, with a
// resolve API and optional live reload in watch mode.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/doc-flyout/internal/config"
	"github.com/ziadkadry99/doc-flyout/internal/nav"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	Watch    bool // enable the live-reload endpoint and page snippet
}

// Server is the local documentation server.
type Server struct {
	cfg        Config
	flyoutCfg  *config.Config
	prober     nav.Prober
	router     chi.Router
	httpServer *http.Server
	reload     *reloadHub
}

// New creates a Server for the given flyout configuration. A nil prober
// defaults to HTTP HEAD probing.
func New(cfg Config, flyoutCfg *config.Config, prober nav.Prober) *Server {
	s := &Server{
		cfg:       cfg,
		flyoutCfg: flyoutCfg,
		prober:    prober,
		reload:    newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/resolve", s.handleResolve)

	if s.cfg.Watch {
		r.Get("/__reload", s.reload.handleWebSocket)
	}

	// Static pages last, so API routes win.
	r.Handle("/*", http.HandlerFunc(s.servePage))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// servePage serves files from the injected site tree. In watch mode,
// HTML pages get the live-reload snippet appended on the way out.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	if containsDotDot(urlPath) {
		http.Error(w, "invalid URL path", http.StatusBadRequest)
		return
	}
	if strings.HasSuffix(urlPath, "/") {
		urlPath += "index.html"
	}

	if s.cfg.Watch && strings.HasSuffix(urlPath, ".html") {
		full := filepath.Join(s.flyoutCfg.SiteDir, filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
		data, err := os.ReadFile(full)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Write(injectReloadSnippet(data))
		return
	}

	http.FileServer(http.Dir(s.flyoutCfg.SiteDir)).ServeHTTP(w, r)
}

// containsDotDot reports whether any slash- or backslash-separated
// segment of the path is "..". The watch-mode branch reads files
// directly, so it cannot rely on http.FileServer's own check.
func containsDotDot(p string) bool {
	if !strings.Contains(p, "..") {
		return false
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// injectReloadSnippet appends the live-reload client before </body>.
func injectReloadSnippet(page []byte) []byte {
	doc := string(page)
	if idx := strings.LastIndex(doc, "</body>"); idx != -1 {
		return []byte(doc[:idx] + reloadSnippet + doc[idx:])
	}
	return []byte(doc + reloadSnippet)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("docflyout serving %s on %s", s.flyoutCfg.SiteDir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
