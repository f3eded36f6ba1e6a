package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/handlers"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// the seeded repo satisfies the catalog service surface directly
	h := handlers.NewCatalogHandler(catalogRepo.NewSeededCatalogRepo())

	r := gin.New()
	r.GET("/api/packages", h.ListPackagesHandler)
	r.GET("/api/packages/:id", h.GetPackageHandler)
	r.GET("/api/hotels/:id", h.GetHotelHandler)
	r.GET("/api/tours", h.ListToursHandler)
	return r
}

func TestCatalogEndpoints(t *testing.T) {
	router := newCatalogRouter()

	t.Run("should list packages", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var packages []models.Package
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
		assert.NotEmpty(t, packages)
	})

	t.Run("should fetch a package by id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/packages/pkg-business", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var pkg models.Package
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkg))
		assert.Equal(t, int64(210000), pkg.Price)
	})

	t.Run("should return 404 for an unknown hotel", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/hotels/hot-nowhere", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should filter tours by category", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tours?category=evening", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var tours []models.Tour
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tours))
		require.NotEmpty(t, tours)
		for _, tour := range tours {
			assert.Equal(t, "evening", tour.Category)
		}
	})

	t.Run("should return an empty array for an unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tours?category=space-travel", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
