package search

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SearchHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewSearchHandlers(service Service, logger *zap.Logger) *SearchHandlers {
	return &SearchHandlers{
		service: service,
		logger:  logger,
	}
}

// Search handles GET /search. With q it runs the scored search; with only a
// category it runs the plain category filter. The optional selected parameter
// carries the client's currently selected location id, which suppresses
// auto-selection.
func (h *SearchHandlers) Search(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	if query == "" && category != "" {
		// Category names are stored title-cased; accept any casing from the client.
		tc := cases.Title(language.English)
		normalized := category
		if !strings.EqualFold(category, "All") {
			normalized = tc.String(strings.ToLower(category))
		} else {
			normalized = "All"
		}
		c.JSON(http.StatusOK, gin.H{
			"category":  normalized,
			"locations": h.service.FilterByCategory(normalized),
		})
		return
	}

	selectedID := 0
	if raw := c.Query("selected"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selected id"})
			return
		}
		selectedID = id
	}

	resp := h.service.Search(c.Request.Context(), query, selectedID)
	c.JSON(http.StatusOK, resp)
}
