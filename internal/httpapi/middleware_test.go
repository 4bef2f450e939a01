package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"unichip/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{
		AllowedOrigins: []string{"https://unichip.hk"},
		AllowedMethods: []string{"GET", "POST"},
		MaxAge:         600,
	}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := cors(next, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodOptions, "/search", nil)
	req.Header.Set("Origin", "https://unichip.hk")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://unichip.hk", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORSWildcardNeverSendsCredentials(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, cfg := range []*config.Config{
		{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}},
		{App: config.AppConfig{Debug: true}},
	} {
		req := httptest.NewRequest(http.MethodPost, "/admin/chip/add", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		cors(next, cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSCredentialsOnlyForListedOrigins(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*", "https://admin.unichip.hk"}}}
	h := cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin/chips", nil)
	req.Header.Set("Origin", "https://admin.unichip.hk")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://admin.unichip.hk", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/admin/chips", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestLoggingKeepsStatus(t *testing.T) {
	h := requestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/chip/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
