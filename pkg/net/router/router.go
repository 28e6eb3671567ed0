// Package router dispatches HTTP requests on an exact method+path token.
//
// Lookup is the whole contract the rest of the library relies on: given a
// method and a path it returns option.Option[http.Handler]. Patterns and
// path parameters are not supported.
package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/ib-77/strata/pkg/collections/hashmap"
	"github.com/ib-77/strata/pkg/collections/list"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
	"go.uber.org/zap"
)

type Route struct {
	ID      uuid.UUID
	Method  string
	Path    string
	Handler http.Handler
}

type Router struct {
	routes   hashmap.Map[string, Route]
	order    list.LinkedList[string]
	notFound http.Handler
}

func New() *Router {
	return &Router{notFound: http.HandlerFunc(notFound)}
}

// token keys a route. Methods never contain a space, so the pair is
// unambiguous for any path.
func token(method, path string) string {
	return method + " " + path
}

// Handle registers h for method and path. It returns the route it
// replaced, if one was registered for the same token.
func (r *Router) Handle(method, path string, h http.Handler) option.Option[Route] {
	tok := token(method, path)
	prev := r.routes.Set(tok, Route{
		ID:      uuid.New(),
		Method:  method,
		Path:    path,
		Handler: h,
	})
	if prev.IsNone() {
		r.order.PushBack(tok)
	}
	return prev
}

func (r *Router) HandleFunc(method, path string, f http.HandlerFunc) option.Option[Route] {
	return r.Handle(method, path, f)
}

func (r *Router) Get(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodGet, path, f)
}

func (r *Router) Head(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodHead, path, f)
}

func (r *Router) Post(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodPost, path, f)
}

func (r *Router) Put(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodPut, path, f)
}

func (r *Router) Patch(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodPatch, path, f)
}

func (r *Router) Delete(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodDelete, path, f)
}

func (r *Router) Options(path string, f http.HandlerFunc) {
	r.HandleFunc(http.MethodOptions, path, f)
}

// NotFound replaces the handler used when Lookup finds nothing.
func (r *Router) NotFound(h http.Handler) {
	r.notFound = h
}

func (r *Router) Lookup(method, path string) option.Option[http.Handler] {
	return option.Map(r.routes.Get(token(method, path)), func(rt Route) http.Handler {
		return rt.Handler
	})
}

// Routes lists the registered routes in registration order.
func (r *Router) Routes() []Route {
	tokens := r.order.Iter()
	found := seq.Map(tokens, r.routes.Get)
	return seq.Collect(seq.Map(
		seq.Filter(found, option.Option[Route].IsSome),
		option.Option[Route].Unwrap))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h := r.Lookup(req.Method, req.URL.Path).UnwrapOrElse(func() http.Handler {
		zap.S().Debugw("no route", "method", req.Method, "path", req.URL.Path)
		return option.FromPair(r.notFound, r.notFound != nil).UnwrapOr(http.HandlerFunc(notFound))
	})
	h.ServeHTTP(w, req)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
