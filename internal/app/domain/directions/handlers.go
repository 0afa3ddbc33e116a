package directions

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
)

// SearchHistory is the slice of the profile store the directions handler
// needs to record the chosen destination.
type SearchHistory interface {
	AddRecentSearch(ctx context.Context, term string)
}

type DirectionsHandlers struct {
	service Service
	catalog catalog.Service
	history SearchHistory
	logger  *zap.Logger
}

func NewDirectionsHandlers(service Service, catalogService catalog.Service, history SearchHistory, logger *zap.Logger) *DirectionsHandlers {
	return &DirectionsHandlers{
		service: service,
		catalog: catalogService,
		history: history,
		logger:  logger,
	}
}

// GetDirections handles GET /directions?from=&to=. Unknown endpoints yield
// an empty route with status 200; callers treat empty as "not computed".
// A successful synthesis records the destination in the recent-search
// history.
func (h *DirectionsHandlers) GetDirections(c *gin.Context) {
	from, err := strconv.Atoi(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from id"})
		return
	}
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to id"})
		return
	}

	route := h.service.Synthesize(c.Request.Context(), from, to)
	if !route.Empty() {
		if dest := h.catalog.FindByID(to); dest != nil {
			h.history.AddRecentSearch(c.Request.Context(), dest.Name)
		}
	}
	c.JSON(http.StatusOK, route)
}
