package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
)

// --- Mock SearchHistory ---

type MockSearchHistory struct {
	mock.Mock
}

func (m *MockSearchHistory) AddRecentSearch(ctx context.Context, term string) {
	m.Called(ctx, term)
}

// Helper
func setupSearchServiceTest() (*ServiceImpl, *MockSearchHistory) {
	logger := zap.NewNop()
	mockHistory := new(MockSearchHistory)
	service := NewService(catalog.NewService(logger), mockHistory, logger)
	return service, mockHistory
}

func TestServiceImpl_Search_EmptyQuery(t *testing.T) {
	service, mockHistory := setupSearchServiceTest()

	resp := service.Search(context.Background(), "", 0)

	// The whole catalog comes back unscored, and nothing is recorded or selected.
	assert.Len(t, resp.Results, 7)
	for _, r := range resp.Results {
		assert.Zero(t, r.Score)
	}
	assert.Nil(t, resp.Selected)
	assert.Nil(t, resp.Viewport)
	mockHistory.AssertNotCalled(t, "AddRecentSearch", mock.Anything, mock.Anything)
}

func TestServiceImpl_Search_NoMatches(t *testing.T) {
	service, mockHistory := setupSearchServiceTest()
	mockHistory.On("AddRecentSearch", mock.Anything, "zzzz").Once()

	resp := service.Search(context.Background(), "zzzz", 0)

	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	assert.Nil(t, resp.Selected)
	mockHistory.AssertExpectations(t)
}

func TestServiceImpl_Search_Scoring(t *testing.T) {
	ctx := context.Background()

	t.Run("exact name match outranks substring matches", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "Great Hall", 0)

		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "Great Hall", resp.Results[0].Name)
		// Exact weight only; the contains branch must not fire on top of it.
		assert.Equal(t, 100, resp.Results[0].Score)
	})

	t.Run("name and description criteria are additive", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "library", 0)

		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Balme Library", resp.Results[0].Name)
		// Name substring (50) plus description mention (20).
		assert.Equal(t, 70, resp.Results[0].Score)
	})

	t.Run("category and description criteria are additive", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "residence", 0)

		require.Len(t, resp.Results, 2)
		for _, r := range resp.Results {
			assert.Equal(t, 50, r.Score)
		}
	})

	t.Run("category-only matches score thirty", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "academic", 0)

		require.Len(t, resp.Results, 3)
		names := []string{resp.Results[0].Name, resp.Results[1].Name, resp.Results[2].Name}
		// Ties keep catalog order.
		assert.Equal(t, []string{"Balme Library", "JQB Building", "Business School"}, names)
		for _, r := range resp.Results {
			assert.Equal(t, 30, r.Score)
		}
	})

	t.Run("tied scores keep catalog order", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "hall", 0)

		require.Len(t, resp.Results, 3)
		assert.Equal(t, "Great Hall", resp.Results[0].Name)
		assert.Equal(t, "Commonwealth Hall", resp.Results[1].Name)
		assert.Equal(t, "Akuafo Hall", resp.Results[2].Name)
	})
}

func TestServiceImpl_Search_AutoSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("top result is selected when nothing is selected yet", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "balme", 0)

		require.NotNil(t, resp.Selected)
		assert.Equal(t, "Balme Library", resp.Selected.Name)
		require.NotNil(t, resp.Viewport)
		assert.Equal(t, resp.Selected.Lat, resp.Viewport.CenterLat)
		assert.Equal(t, resp.Selected.Lng, resp.Viewport.CenterLng)
		assert.Equal(t, 17, resp.Viewport.Zoom)
	})

	t.Run("an existing selection suppresses auto-selection", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, mock.Anything).Maybe()

		resp := service.Search(ctx, "balme", 3)

		assert.NotEmpty(t, resp.Results)
		assert.Nil(t, resp.Selected)
		assert.Nil(t, resp.Viewport)
	})
}

func TestServiceImpl_Search_History(t *testing.T) {
	ctx := context.Background()

	t.Run("multi-character queries are recorded", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, "gate").Once()

		service.Search(ctx, "gate", 0)

		mockHistory.AssertExpectations(t)
	})

	t.Run("single-character queries are not recorded", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()

		service.Search(ctx, "b", 0)

		mockHistory.AssertNotCalled(t, "AddRecentSearch", mock.Anything, mock.Anything)
	})

	t.Run("cached queries still record history", func(t *testing.T) {
		service, mockHistory := setupSearchServiceTest()
		mockHistory.On("AddRecentSearch", mock.Anything, "gate").Twice()

		first := service.Search(ctx, "gate", 0)
		second := service.Search(ctx, "gate", 0)

		assert.Equal(t, first.Results, second.Results)
		mockHistory.AssertExpectations(t)
	})
}

func TestServiceImpl_FilterByCategory(t *testing.T) {
	service, _ := setupSearchServiceTest()

	t.Run("exact category match", func(t *testing.T) {
		out := service.FilterByCategory("Residence")
		require.Len(t, out, 2)
		assert.Equal(t, "Commonwealth Hall", out[0].Name)
		assert.Equal(t, "Akuafo Hall", out[1].Name)
	})

	t.Run("All returns the whole catalog", func(t *testing.T) {
		assert.Len(t, service.FilterByCategory("All"), 7)
	})

	t.Run("unknown category returns nothing", func(t *testing.T) {
		assert.Empty(t, service.FilterByCategory("Aquatic"))
	})
}
