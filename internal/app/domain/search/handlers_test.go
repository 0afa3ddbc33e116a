package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
)

// Helper
func setupSearchRouter(t *testing.T) (*gin.Engine, *MockSearchHistory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service, mockHistory := setupSearchServiceTest()
	handlers := NewSearchHandlers(service, zap.NewNop())

	r := gin.New()
	r.GET("/search", handlers.Search)
	return r, mockHistory
}

func TestSearchHandlers_Search(t *testing.T) {
	t.Run("query search returns the scored response", func(t *testing.T) {
		r, mockHistory := setupSearchRouter(t)
		mockHistory.On("AddRecentSearch", mock.Anything, "library").Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=library", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Balme Library", resp.Results[0].Name)
		mockHistory.AssertExpectations(t)
	})

	t.Run("category filter normalizes casing and skips history", func(t *testing.T) {
		r, mockHistory := setupSearchRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?category=residence", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Category  string                  `json:"category"`
			Locations []models.LocationRecord `json:"locations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Residence", resp.Category)
		assert.Len(t, resp.Locations, 2)
		mockHistory.AssertNotCalled(t, "AddRecentSearch", mock.Anything, mock.Anything)
	})

	t.Run("non-numeric selected id is rejected", func(t *testing.T) {
		r, _ := setupSearchRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=hall&selected=abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
