package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/handlers"
	"handicraft-catalog/internal/models"
	"handicraft-catalog/internal/repository"
)

func newTestHandlers(t *testing.T) Handlers {
	t.Helper()
	products, err := repository.NewProductRepository(catalog.Seed(), nil)
	require.NoError(t, err)

	return Handlers{
		Products:  handlers.NewProductHandler(products, models.SortNewest, 20),
		Bags:      handlers.NewBagHandler(products, repository.NewBagRepository()),
		Favorites: handlers.NewFavoritesHandler(products, repository.NewFavoritesRepository()),
	}
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{"allow all", []string{"*"}, "http://localhost:19006", "*"},
		{"allowed origin", []string{"https://shop.example"}, "https://shop.example", "https://shop.example"},
		{"other origin", []string{"https://shop.example"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(newTestHandlers(t), tt.origins)

			req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(newTestHandlers(t), []string{"*"})

	for _, path := range []string{"/healthz", "/v1/products", "/v1/products/1", "/v1/categories", "/v1/sort-options", "/v1/home", "/v1/favorites"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/bags", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
