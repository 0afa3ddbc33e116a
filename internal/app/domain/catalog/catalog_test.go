package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceImpl_All(t *testing.T) {
	service := NewService(zap.NewNop())

	all := service.All()
	require.Len(t, all, 7)
	assert.Equal(t, "Balme Library", all[0].Name)
	assert.Equal(t, "Main Gate", all[6].Name)

	// Callers get a copy, not the backing slice.
	all[0].Name = "mutated"
	assert.Equal(t, "Balme Library", service.All()[0].Name)
}

func TestServiceImpl_FindByID(t *testing.T) {
	service := NewService(zap.NewNop())

	t.Run("known id", func(t *testing.T) {
		rec := service.FindByID(2)
		require.NotNil(t, rec)
		assert.Equal(t, "Great Hall", rec.Name)
		assert.Equal(t, "Administrative", rec.Category)
		assert.True(t, rec.IsLandmark)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		assert.Nil(t, service.FindByID(0))
		assert.Nil(t, service.FindByID(42))
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		rec := service.FindByID(1)
		rec.Name = "mutated"
		assert.Equal(t, "Balme Library", service.FindByID(1).Name)
	})
}

func TestServiceImpl_FilterByCategory(t *testing.T) {
	service := NewService(zap.NewNop())

	t.Run("exact match only", func(t *testing.T) {
		out := service.FilterByCategory("Academic")
		require.Len(t, out, 3)
		for _, rec := range out {
			assert.Equal(t, "Academic", rec.Category)
		}
	})

	t.Run("casing matters", func(t *testing.T) {
		assert.Empty(t, service.FilterByCategory("academic"))
	})

	t.Run("All and empty string return everything", func(t *testing.T) {
		assert.Len(t, service.FilterByCategory("All"), 7)
		assert.Len(t, service.FilterByCategory(""), 7)
	})
}

func TestServiceImpl_Categories(t *testing.T) {
	service := NewService(zap.NewNop())

	assert.Equal(t,
		[]string{"All", "Academic", "Administrative", "Residence", "Landmark"},
		service.Categories())
}
