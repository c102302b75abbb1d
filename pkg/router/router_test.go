package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/uplinks/top", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/uplinks/top", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/sales/top-products", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sales/top-products", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotFound(t *testing.T) {
	r := New()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWildcardRoute(t *testing.T) {
	r := New()
	var got string
	r.GET("/api/v1/jobs/*", func(w http.ResponseWriter, req *http.Request) {
		got = req.URL.Path
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/abc-123", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/v1/jobs/abc-123", got)
}

func TestMatchWildcardRoute(t *testing.T) {
	assert.True(t, matchWildcardRoute("/api/v1/jobs/x", "/api/v1/jobs/*"))
	assert.True(t, matchWildcardRoute("/swagger/index.html", "/swagger/*"))
	assert.True(t, matchWildcardRoute("/swagger/doc.json", "/swagger/*"))
	assert.False(t, matchWildcardRoute("/api/v1/jobs", "/api/v1/jobs/*/status"))
	assert.False(t, matchWildcardRoute("/api/v2/jobs/x", "/api/v1/jobs/*"))
}
