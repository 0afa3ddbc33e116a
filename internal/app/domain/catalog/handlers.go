package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
)

type CatalogHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewCatalogHandlers(service Service, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		service: service,
		logger:  logger,
	}
}

// ListLocations returns the full catalog along with the default viewport the
// map opens on.
func (h *CatalogHandlers) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations": h.service.All(),
		"viewport": models.MapViewport{
			CenterLat: DefaultCenterLat,
			CenterLng: DefaultCenterLng,
			Zoom:      DefaultZoom,
		},
	})
}

// GetLocation returns a single catalog record by id.
func (h *CatalogHandlers) GetLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	rec := h.service.FindByID(id)
	if rec == nil {
		h.logger.Warn("Location not found", zap.Int("id", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListCategories returns the filterable category names.
func (h *CatalogHandlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.service.Categories()})
}
