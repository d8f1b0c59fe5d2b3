package pkgrouter

import (
	"net/http"
	"strings"
)

// Group registers routes on a Router under a shared path prefix.
//
// It is how feature modules are mounted: every path a module registers is
// joined onto the prefix, so a module route "/" becomes "<prefix>/".
type Group struct {
	r      *Router
	prefix string
	mws    []Middleware
}

// Group returns a route group rooted at prefix. Middleware passed here runs
// after the router-wide stack and before any per-route middleware.
func (r *Router) Group(prefix string, mws ...Middleware) *Group {
	return &Group{r: r, prefix: normalizePrefix(prefix), mws: mws}
}

// Prefix returns the normalized mount prefix of the group.
func (g *Group) Prefix() string {
	return g.prefix
}

// GET registers a GET endpoint under the group prefix.
func (g *Group) GET(path string, h Handler, mws ...Middleware) {
	g.r.endpoint(http.MethodGet, g.join(path), h, g.with(mws)...)
}

// POST registers a POST endpoint under the group prefix.
func (g *Group) POST(path string, h Handler, mws ...Middleware) {
	g.r.endpoint(http.MethodPost, g.join(path), h, g.with(mws)...)
}

// Handle registers a raw http.Handler under the group prefix.
func (g *Group) Handle(method, path string, h http.Handler, mws ...Middleware) {
	g.r.Handle(method, g.join(path), h, g.with(mws)...)
}

func (g *Group) with(mws []Middleware) []Middleware {
	out := make([]Middleware, 0, len(g.mws)+len(mws))
	out = append(out, g.mws...)
	return append(out, mws...)
}

func (g *Group) join(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.prefix + path
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimRight(prefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
