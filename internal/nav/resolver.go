package nav

import (
	"context"
	"log"
	"net/http"
	"strings"
)

// Prober tests whether a URL is reachable. Implementations must not
// follow the response body; only the status matters.
type Prober interface {
	Probe(ctx context.Context, url string) (status int, err error)
}

// HTTPProber probes URLs with a metadata-only HEAD request.
type HTTPProber struct {
	Client *http.Client
}

// Probe issues a HEAD request and returns the response status code.
func (p *HTTPProber) Probe(ctx context.Context, url string) (int, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// Resolver computes the destination URL for a language or version switch.
type Resolver struct {
	nav    Context
	prober Prober
}

// NewResolver creates a Resolver for the given page context. A nil prober
// falls back to a plain HTTP HEAD prober.
func NewResolver(nav Context, prober Prober) *Resolver {
	if prober == nil {
		prober = &HTTPProber{}
	}
	return &Resolver{nav: nav, prober: prober}
}

// Resolve returns the navigation target for selecting code on the given
// axis. It always returns a usable URL: probe failures are logged and
// converted into the asset-directory fallback, never surfaced as errors.
func (r *Resolver) Resolve(ctx context.Context, axis Axis, code string) string {
	path := r.Substitute(axis, code)

	// Pages opened straight from disk cannot be probed; the substituted
	// path is the final answer.
	if r.nav.Local {
		return "file://" + path
	}

	url := r.nav.Origin + path
	status, err := r.prober.Probe(ctx, url)
	if err != nil {
		log.Printf("flyout: probe %s: %v", url, err)
		return r.Fallback(axis, code)
	}
	if status < 200 || status > 299 {
		log.Printf("flyout: probe %s: status %d, using fallback", url, status)
		return r.Fallback(axis, code)
	}
	return url
}

// Substitute replaces the current-code path segment for the given axis
// with the selected code. A path that does not contain the segment is
// returned unchanged; that is an accepted edge case, not an error.
func (r *Resolver) Substitute(axis Axis, code string) string {
	cur := r.nav.current(axis)
	return strings.Replace(r.nav.PagePath, "/"+cur+"/", "/"+code+"/", 1)
}

// Fallback builds the known-good URL rooted at the widget's asset
// directory: <asset-dir>/<language>/<version>/index.html, with the
// selected axis substituted and the other axis's current code retained.
func (r *Resolver) Fallback(axis Axis, code string) string {
	lang, ver := r.nav.Language, r.nav.Version
	if axis == AxisVersion {
		ver = code
	} else {
		lang = code
	}
	return strings.TrimSuffix(r.nav.AssetDir, "/") + "/" + lang + "/" + ver + "/index.html"
}
