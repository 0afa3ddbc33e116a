package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
	"github.com/felixashong/campus-navigate/internal/app/domain/directions"
	"github.com/felixashong/campus-navigate/internal/app/domain/profiles"
	"github.com/felixashong/campus-navigate/internal/app/domain/search"
)

type AppHandlers struct {
	Catalog    *catalog.CatalogHandlers
	Search     *search.SearchHandlers
	Directions *directions.DirectionsHandlers
	Profiles   *profiles.ProfilesHandler
}

func Setup(r *gin.Engine, dbPool *pgxpool.Pool, log *zap.Logger) {
	handlers, err := setupDependencies(dbPool, log)
	if err != nil {
		log.Fatal("Failed to setup dependencies", zap.Error(err))
	}
	setupRouter(r, handlers, log)
}

func setupDependencies(dbPool *pgxpool.Pool, log *zap.Logger) (*AppHandlers, error) {
	ctx := context.Background()

	profilesRepo := profiles.NewPostgresRepository(dbPool, log)
	profilesService, err := profiles.NewService(ctx, profilesRepo, log)
	if err != nil {
		return nil, err
	}

	catalogService := catalog.NewService(log)
	searchService := search.NewService(catalogService, profilesService, log)
	directionsService := directions.NewService(catalogService, log)

	return &AppHandlers{
		Catalog:    catalog.NewCatalogHandlers(catalogService, log),
		Search:     search.NewSearchHandlers(searchService, log),
		Directions: directions.NewDirectionsHandlers(directionsService, catalogService, profilesService, log),
		Profiles:   profiles.NewProfilesHandler(profilesService, log),
	}, nil
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api/v1")
	{
		// Location catalog endpoints
		locationsGroup := apiGroup.Group("/locations")
		{
			locationsGroup.GET("", h.Catalog.ListLocations)
			locationsGroup.GET("/categories", h.Catalog.ListCategories)
			locationsGroup.GET("/:id", h.Catalog.GetLocation)
		}

		// Search endpoint
		apiGroup.GET("/search", h.Search.Search)

		// Directions endpoint
		apiGroup.GET("/directions", h.Directions.GetDirections)

		// Profile endpoints
		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.GET("", h.Profiles.GetProfile)
			profileGroup.PATCH("", h.Profiles.UpdateProfile)

			savedGroup := profileGroup.Group("/locations")
			{
				savedGroup.GET("", h.Profiles.ListSavedLocations)
				savedGroup.POST("", h.Profiles.AddSavedLocation)
				savedGroup.DELETE("/:id", h.Profiles.RemoveSavedLocation)
			}

			recentGroup := profileGroup.Group("/searches")
			{
				recentGroup.GET("", h.Profiles.ListRecentSearches)
				recentGroup.POST("", h.Profiles.AddRecentSearch)
				recentGroup.DELETE("", h.Profiles.ClearRecentSearches)
				recentGroup.DELETE("/:term", h.Profiles.RemoveRecentSearch)
			}

			settingsGroup := profileGroup.Group("/settings")
			{
				settingsGroup.GET("", h.Profiles.GetSettings)
				settingsGroup.PATCH("", h.Profiles.UpdateSettings)
			}
		}
	}

	// 404 handler - must be last
	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
