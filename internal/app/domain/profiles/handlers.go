package profiles

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
)

type ProfilesHandler struct {
	service Service
	logger  *zap.Logger
}

func NewProfilesHandler(service Service, logger *zap.Logger) *ProfilesHandler {
	return &ProfilesHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Profile())
}

func (h *ProfilesHandler) UpdateProfile(c *gin.Context) {
	var params models.UpdateUserProfileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	updated := h.service.UpdateProfile(c.Request.Context(), params)
	h.logger.Info("Profile updated", zap.String("name", updated.Name))
	c.JSON(http.StatusOK, updated)
}

func (h *ProfilesHandler) ListSavedLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"saved_locations": h.service.SavedLocations()})
}

type addSavedLocationRequest struct {
	ID       int    `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

func (h *ProfilesHandler) AddSavedLocation(c *gin.Context) {
	var req addSavedLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved location payload"})
		return
	}

	saved := h.service.AddSavedLocation(c.Request.Context(), models.SavedLocation{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	})

	h.logger.Info("Location saved",
		zap.Int("id", saved.ID),
		zap.String("name", saved.Name))
	c.JSON(http.StatusOK, saved)
}

func (h *ProfilesHandler) RemoveSavedLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	h.service.RemoveSavedLocation(c.Request.Context(), id)
	h.logger.Info("Saved location removed", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{"saved_locations": h.service.SavedLocations()})
}

func (h *ProfilesHandler) ListRecentSearches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recent_searches": h.service.RecentSearches()})
}

type addRecentSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *ProfilesHandler) AddRecentSearch(c *gin.Context) {
	var req addRecentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search payload"})
		return
	}

	h.service.AddRecentSearch(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, gin.H{"recent_searches": h.service.RecentSearches()})
}

func (h *ProfilesHandler) RemoveRecentSearch(c *gin.Context) {
	term := c.Param("term")
	h.service.RemoveRecentSearch(c.Request.Context(), term)
	c.JSON(http.StatusOK, gin.H{"recent_searches": h.service.RecentSearches()})
}

func (h *ProfilesHandler) ClearRecentSearches(c *gin.Context) {
	h.service.ClearRecentSearches(c.Request.Context())
	h.logger.Info("Recent searches cleared")
	c.JSON(http.StatusOK, gin.H{"recent_searches": h.service.RecentSearches()})
}

func (h *ProfilesHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Settings())
}

func (h *ProfilesHandler) UpdateSettings(c *gin.Context) {
	var params models.UpdateUserSettingsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}

	updated := h.service.UpdateSettings(c.Request.Context(), params)
	c.JSON(http.StatusOK, updated)
}
