package directions

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
	"github.com/felixashong/campus-navigate/internal/app/models"
)

// Helper
func setupDirectionsServiceTest(seed int64) (*ServiceImpl, catalog.Service) {
	logger := zap.NewNop()
	catalogService := catalog.NewService(logger)
	service := NewService(catalogService, logger, WithRand(rand.New(rand.NewSource(seed))))
	return service, catalogService
}

func TestServiceImpl_Synthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a five point polyline between the endpoints", func(t *testing.T) {
		service, catalogService := setupDirectionsServiceTest(1)

		// Balme Library to Great Hall.
		route := service.Synthesize(ctx, 1, 2)
		start := catalogService.FindByID(1)
		end := catalogService.FindByID(2)

		require.Len(t, route.Points, 5)
		assert.Equal(t, start.Lat, route.Points[0].Lat)
		assert.Equal(t, start.Lng, route.Points[0].Lng)
		assert.Equal(t, end.Lat, route.Points[4].Lat)
		assert.Equal(t, end.Lng, route.Points[4].Lng)

		latDiff := end.Lat - start.Lat
		lngDiff := end.Lng - start.Lng
		assert.InDelta(t, start.Lat+latDiff*0.25, route.Points[1].Lat, 1e-9)
		assert.InDelta(t, start.Lng+lngDiff*0.2, route.Points[1].Lng, 1e-9)
		assert.InDelta(t, start.Lat+latDiff*0.5, route.Points[2].Lat, 1e-9)
		assert.InDelta(t, start.Lng+lngDiff*0.5, route.Points[2].Lng, 1e-9)
		assert.InDelta(t, start.Lat+latDiff*0.75, route.Points[3].Lat, 1e-9)
		assert.InDelta(t, start.Lng+lngDiff*0.8, route.Points[3].Lng, 1e-9)
	})

	t.Run("produces the six step template with fixed totals", func(t *testing.T) {
		service, _ := setupDirectionsServiceTest(1)

		route := service.Synthesize(ctx, 1, 2)

		require.Len(t, route.Steps, 6)
		assert.Equal(t, "Start at Balme Library", route.Steps[0].Instruction)
		assert.Equal(t, "0 m", route.Steps[0].Distance)
		assert.Contains(t, route.Steps[1].Instruction, "along the main path")
		assert.Contains(t, []string{
			"Continue straight past the fountain",
			"Continue straight past the garden",
		}, route.Steps[2].Instruction)
		assert.Contains(t, []string{
			"Turn left at the intersection",
			"Turn right at the intersection",
		}, route.Steps[3].Instruction)
		assert.Equal(t, "Continue to Great Hall", route.Steps[4].Instruction)
		assert.Equal(t, "Arrive at your destination: Great Hall", route.Steps[5].Instruction)

		// Totals aggregate the step literals, so they are the same for every pair.
		assert.Equal(t, "450 m", route.Totals.Distance)
		assert.Equal(t, "6 min", route.Totals.Time)
	})

	t.Run("heading reflects the sign of the coordinate deltas", func(t *testing.T) {
		service, _ := setupDirectionsServiceTest(1)

		// Balme Library (5.6505, -0.1856) to Main Gate (5.6555, -0.1816):
		// north and east.
		route := service.Synthesize(ctx, 1, 7)
		assert.Equal(t, "Head northeast along the main path", route.Steps[1].Instruction)

		// And the reverse runs southwest.
		route = service.Synthesize(ctx, 7, 1)
		assert.Equal(t, "Head southwest along the main path", route.Steps[1].Instruction)
	})

	t.Run("same seed gives the same route", func(t *testing.T) {
		first, _ := setupDirectionsServiceTest(42)
		second, _ := setupDirectionsServiceTest(42)

		assert.Equal(t, first.Synthesize(ctx, 1, 2), second.Synthesize(ctx, 1, 2))
	})

	t.Run("unknown endpoint yields an empty route, not an error", func(t *testing.T) {
		service, _ := setupDirectionsServiceTest(1)

		for _, pair := range [][2]int{{99, 2}, {1, 99}, {0, 0}} {
			route := service.Synthesize(ctx, pair[0], pair[1])
			assert.True(t, route.Empty())
			assert.Empty(t, route.Points)
			assert.Empty(t, route.Steps)
			assert.Equal(t, "0 m", route.Totals.Distance)
			assert.Equal(t, "0 min", route.Totals.Time)
			assert.Nil(t, route.Viewport)
		}
	})

	t.Run("viewport centers on the midpoint with close range zoom", func(t *testing.T) {
		service, catalogService := setupDirectionsServiceTest(1)

		route := service.Synthesize(ctx, 1, 2)
		start := catalogService.FindByID(1)
		end := catalogService.FindByID(2)

		require.NotNil(t, route.Viewport)
		assert.InDelta(t, (start.Lat+end.Lat)/2, route.Viewport.CenterLat, 1e-9)
		assert.InDelta(t, (start.Lng+end.Lng)/2, route.Viewport.CenterLng, 1e-9)
		// Campus-scale spans are well under 0.2 km on the degree heuristic.
		assert.Equal(t, 16, route.Viewport.Zoom)
	})
}

func TestViewportZoomThresholds(t *testing.T) {
	mk := func(lat, lng float64) *models.LocationRecord {
		return &models.LocationRecord{Lat: lat, Lng: lng}
	}

	cases := []struct {
		name     string
		span     float64
		expected int
	}{
		{"tight span zooms in", 0.001, 16},
		{"medium span", 0.003, 15},
		{"wide span zooms out", 0.01, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vp := viewport(mk(0, 0), mk(tc.span, 0))
			assert.Equal(t, tc.expected, vp.Zoom)
		})
	}
}
