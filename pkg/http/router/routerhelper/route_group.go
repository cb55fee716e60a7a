package routerhelper

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup. httprouter routes sharing a path prefix.
type RouteGroup struct {
	r *httprouter.Router
	p string
}

func NewRouteGroup(r *httprouter.Router, path string) *RouteGroup {
	return &RouteGroup{r: r, p: normalizePrefix(path)}
}

func (g *RouteGroup) Group(path string) *RouteGroup {
	return NewRouteGroup(g.r, g.subPath(path))
}

func (g *RouteGroup) subPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.p + path
}

func (g *RouteGroup) Handle(method, path string, handle httprouter.Handle) {
	g.r.Handle(method, g.subPath(path), handle)
}

func (g *RouteGroup) Handler(method, path string, handler http.Handler) {
	g.r.Handler(method, g.subPath(path), handler)
}

func (g *RouteGroup) GET(path string, handle httprouter.Handle) {
	g.Handle(http.MethodGet, path, handle)
}

func (g *RouteGroup) POST(path string, handle httprouter.Handle) {
	g.Handle(http.MethodPost, path, handle)
}

func (g *RouteGroup) PUT(path string, handle httprouter.Handle) {
	g.Handle(http.MethodPut, path, handle)
}

func (g *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	g.Handle(http.MethodDelete, path, handle)
}

func normalizePrefix(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
