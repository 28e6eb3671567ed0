package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.Get("/", text("root"))
	r.Post("/items", text("created"))

	assert.True(t, r.Lookup(http.MethodGet, "/").IsSome())
	assert.True(t, r.Lookup(http.MethodPost, "/items").IsSome())
	assert.True(t, r.Lookup(http.MethodGet, "/items").IsNone(), "method is part of the token")
	assert.True(t, r.Lookup(http.MethodGet, "/missing").IsNone())
}

func TestHandleReturnsReplacedRoute(t *testing.T) {
	t.Parallel()

	r := New()
	assert.True(t, r.Handle(http.MethodGet, "/a", text("1")).IsNone())
	prev := r.Handle(http.MethodGet, "/a", text("2"))
	require.True(t, prev.IsSome())
	assert.Equal(t, "/a", prev.Unwrap().Path)

	routes := r.Routes()
	require.Len(t, routes, 1)
	assert.NotEqual(t, prev.Unwrap().ID, routes[0].ID)
}

func TestRoutesKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := New()
	r.Get("/b", text("b"))
	r.Put("/a", text("a"))
	r.Delete("/c", text("c"))

	var got []string
	for _, rt := range r.Routes() {
		got = append(got, rt.Method+" "+rt.Path)
	}
	assert.Equal(t, []string{"GET /b", "PUT /a", "DELETE /c"}, got)
}

func TestServeHTTP(t *testing.T) {
	t.Parallel()

	r := New()
	r.Get("/hello", text("world"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "world", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")

	r.NotFound(text("custom"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, "custom", rec.Body.String())
}

func TestTokenKeepsMethodAndPathApart(t *testing.T) {
	t.Parallel()

	r := New()
	r.Handle("GE", "T/a", text("split"))
	r.Get("/a", text("get"))
	r.Handle(http.MethodGet, "x", text("relative"))
	r.Handle("GETx", "", text("glued"))

	require.Len(t, r.Routes(), 4)

	for _, tc := range []struct{ method, path, body string }{
		{"GE", "T/a", "split"},
		{http.MethodGet, "/a", "get"},
		{http.MethodGet, "x", "relative"},
		{"GETx", "", "glued"},
	} {
		h := r.Lookup(tc.method, tc.path)
		require.True(t, h.IsSome(), "%s %q", tc.method, tc.path)

		rec := httptest.NewRecorder()
		h.Unwrap().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, tc.body, rec.Body.String())
	}
	assert.True(t, r.Lookup("GE", "T/b").IsNone())
}
