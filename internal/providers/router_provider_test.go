package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProvider_RegistersRoutes(t *testing.T) {
	router := NewRouterProvider()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	router.Get("/stats", handler)
	router.Post("/scan", handler)

	routes := router.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/stats", routes[0].Url)
	assert.Equal(t, "/scan", routes[1].Url)
}

func TestRouterProvider_GetRejectsPost(t *testing.T) {
	router := NewRouterProvider()
	router.Get("/stats", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	route := router.GetRoutes()[0]

	rec := httptest.NewRecorder()
	route.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stats", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	route.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProvider_PostRejectsGet(t *testing.T) {
	router := NewRouterProvider()
	router.Post("/scan", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	route := router.GetRoutes()[0]

	rec := httptest.NewRecorder()
	route.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scan", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	route.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
