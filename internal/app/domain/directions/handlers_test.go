package directions

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
	"github.com/felixashong/campus-navigate/internal/app/models"
)

type MockSearchHistory struct {
	mock.Mock
}

func (m *MockSearchHistory) AddRecentSearch(ctx context.Context, term string) {
	m.Called(ctx, term)
}

// Helper
func setupDirectionsRouter(t *testing.T) (*gin.Engine, *MockSearchHistory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	catalogService := catalog.NewService(logger)
	service := NewService(catalogService, logger, WithRand(rand.New(rand.NewSource(1))))
	mockHistory := new(MockSearchHistory)
	handlers := NewDirectionsHandlers(service, catalogService, mockHistory, logger)

	r := gin.New()
	r.GET("/directions", handlers.GetDirections)
	return r, mockHistory
}

func TestDirectionsHandlers_GetDirections(t *testing.T) {
	t.Run("returns a route and records the destination", func(t *testing.T) {
		r, mockHistory := setupDirectionsRouter(t)
		mockHistory.On("AddRecentSearch", mock.Anything, "Great Hall").Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/directions?from=1&to=2", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var route models.Route
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &route))
		assert.Len(t, route.Points, 5)
		assert.Len(t, route.Steps, 6)
		mockHistory.AssertExpectations(t)
	})

	t.Run("unknown destination returns an empty route with 200", func(t *testing.T) {
		r, mockHistory := setupDirectionsRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/directions?from=1&to=99", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var route models.Route
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &route))
		assert.True(t, route.Empty())
		mockHistory.AssertNotCalled(t, "AddRecentSearch", mock.Anything, mock.Anything)
	})

	t.Run("non-numeric ids are rejected", func(t *testing.T) {
		r, _ := setupDirectionsRouter(t)

		for _, target := range []string{"/directions?from=abc&to=2", "/directions?from=1&to=", "/directions"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, target, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})
}
