package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ziadkadry99/doc-flyout/internal/inject"
	"github.com/ziadkadry99/doc-flyout/internal/nav"
)

// resolveRequest is the JSON body for the /api/resolve endpoint.
type resolveRequest struct {
	Axis string `json:"axis"`
	Code string `json:"code"`
	Path string `json:"path"` // current page path, e.g. "/en/latest/guide.html"
}

// resolveResponse is the JSON response for the /api/resolve endpoint.
type resolveResponse struct {
	URL string `json:"url"`
}

// handleResolve runs the server-side resolver for a page of the served
// site. The page's own path segments determine its current codes, the
// same rule the injector applies.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	axis, ok := nav.ParseAxis(req.Axis)
	if !ok {
		http.Error(w, `{"error":"axis must be language or version"}`, http.StatusBadRequest)
		return
	}
	if req.Code == "" || req.Path == "" {
		http.Error(w, `{"error":"code and path are required"}`, http.StatusBadRequest)
		return
	}

	lang, version := inject.DetectPageContext(strings.TrimPrefix(req.Path, "/"), s.flyoutCfg)

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	origin := scheme + "://" + r.Host

	resolver := nav.NewResolver(nav.Context{
		Language: lang,
		Version:  version,
		PagePath: req.Path,
		Origin:   origin,
		AssetDir: origin + "/" + s.flyoutCfg.AssetPath,
	}, s.prober)

	url := resolver.Resolve(r.Context(), axis, req.Code)
	json.NewEncoder(w).Encode(resolveResponse{URL: url})
}
