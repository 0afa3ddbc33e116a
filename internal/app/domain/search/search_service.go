package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
	"github.com/felixashong/campus-navigate/internal/app/models"
	"github.com/felixashong/campus-navigate/internal/app/observability/metrics"
)

// Relevance weights. An exact name match short-circuits the contains branch,
// so at most one name criterion fires per record; category and description
// matches are additive on top.
const (
	scoreNameExact    = 100
	scoreNameContains = 50
	scoreCategory     = 30
	scoreDescription  = 20
)

// Zoom applied when a search auto-selects its top result.
const autoSelectZoom = 17

// minHistoryLength is the trimmed query length above which a query is worth
// recording in the search history.
const minHistoryLength = 1

var _ Service = (*ServiceImpl)(nil)

// SearchHistory is the slice of the profile store the search engine needs.
type SearchHistory interface {
	AddRecentSearch(ctx context.Context, term string)
}

// Service scores and orders catalog records for a free-text query.
type Service interface {
	Search(ctx context.Context, query string, selectedID int) *models.SearchResponse
	FilterByCategory(category string) []models.LocationRecord
}

type ServiceImpl struct {
	catalog catalog.Service
	history SearchHistory
	cache   *cache.Cache
	logger  *zap.Logger
}

func NewService(catalogService catalog.Service, history SearchHistory, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		catalog: catalogService,
		history: history,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		logger:  logger,
	}
}

// Search returns the catalog records matching the query, ordered by
// descending relevance with ties kept in catalog order. An empty query means
// "no filter" and returns the whole catalog. Queries longer than one
// character are recorded in the recent-search history. When results exist
// and the caller has nothing selected (selectedID zero), the top result
// becomes the selection and the viewport recenters on it.
func (s *ServiceImpl) Search(ctx context.Context, query string, selectedID int) *models.SearchResponse {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "Search")
	span.SetAttributes(attribute.String("search.query", query))
	defer span.End()

	if m := metrics.Get(); m != nil {
		m.SearchRequestsTotal.Add(ctx, 1)
	}

	resp := &models.SearchResponse{Query: query}

	if strings.TrimSpace(query) == "" {
		for _, rec := range s.catalog.All() {
			resp.Results = append(resp.Results, models.ScoredLocation{LocationRecord: rec})
		}
		span.SetStatus(codes.Ok, "Empty query, full catalog")
		return resp
	}

	if len(strings.TrimSpace(query)) > minHistoryLength {
		s.history.AddRecentSearch(ctx, query)
	}

	resp.Results = s.scoredResults(query)
	if resp.Results == nil {
		resp.Results = []models.ScoredLocation{}
	}

	if len(resp.Results) > 0 && selectedID == 0 {
		top := resp.Results[0].LocationRecord
		resp.Selected = &top
		resp.Viewport = &models.MapViewport{
			CenterLat: top.Lat,
			CenterLng: top.Lng,
			Zoom:      autoSelectZoom,
		}
	}

	s.logger.Info("Search completed",
		zap.String("query", query),
		zap.Int("results", len(resp.Results)),
		zap.Bool("auto_selected", resp.Selected != nil))
	span.SetAttributes(attribute.Int("search.results", len(resp.Results)))
	span.SetStatus(codes.Ok, "Search completed")
	return resp
}

// scoredResults computes the ranked result list, consulting the short-lived
// query cache first. The history side effect stays outside this path so it
// fires on cached queries too.
func (s *ServiceImpl) scoredResults(query string) []models.ScoredLocation {
	key := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := s.cache.Get(key); ok {
		results := cached.([]models.ScoredLocation)
		s.logger.Debug("Search cache hit", zap.String("query", key), zap.Int("results", len(results)))
		return results
	}

	var results []models.ScoredLocation
	for _, rec := range s.catalog.All() {
		score := scoreLocation(rec, key)
		if score > 0 {
			results = append(results, models.ScoredLocation{LocationRecord: rec, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	s.cache.Set(key, results, cache.DefaultExpiration)
	return results
}

// scoreLocation computes the relevance of one record for a lowercased query.
func scoreLocation(rec models.LocationRecord, query string) int {
	score := 0
	name := strings.ToLower(rec.Name)
	if name == query {
		score += scoreNameExact
	} else if strings.Contains(name, query) {
		score += scoreNameContains
	}
	if strings.Contains(strings.ToLower(rec.Category), query) {
		score += scoreCategory
	}
	if strings.Contains(strings.ToLower(rec.Description), query) {
		score += scoreDescription
	}
	return score
}

// FilterByCategory is a pure predicate filter over the catalog. It never
// touches scoring or the search history.
func (s *ServiceImpl) FilterByCategory(category string) []models.LocationRecord {
	return s.catalog.FilterByCategory(category)
}
