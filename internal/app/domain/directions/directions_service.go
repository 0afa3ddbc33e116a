package directions

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/domain/catalog"
	"github.com/felixashong/campus-navigate/internal/app/models"
	"github.com/felixashong/campus-navigate/internal/app/observability/metrics"
)

// degreesToKm is the rough km-per-degree factor used by the zoom heuristic.
const degreesToKm = 111

var _ Service = (*ServiceImpl)(nil)

// Service synthesizes a display route between two catalog records. The
// polyline and step text are a templated approximation, not pathfinding;
// the interpolation fractions and the literal distances are part of the
// contract and must not drift.
type Service interface {
	Synthesize(ctx context.Context, startID, endID int) *models.Route
}

type ServiceImpl struct {
	catalog catalog.Service
	rng     *rand.Rand
	logger  *zap.Logger
}

// Option configures the service.
type Option func(*ServiceImpl)

// WithRand replaces the random source used for the filler and turn steps,
// letting tests pin the output.
func WithRand(r *rand.Rand) Option {
	return func(s *ServiceImpl) {
		s.rng = r
	}
}

func NewService(catalogService catalog.Service, logger *zap.Logger, opts ...Option) *ServiceImpl {
	s := &ServiceImpl{
		catalog: catalogService,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns a 5-point polyline and 6 templated direction steps
// between the two records, or an empty route when either id is unknown.
// Empty means "not computed", never an error.
func (s *ServiceImpl) Synthesize(ctx context.Context, startID, endID int) *models.Route {
	ctx, span := otel.Tracer("DirectionsService").Start(ctx, "Synthesize", trace.WithAttributes(
		attribute.Int("route.start_id", startID),
		attribute.Int("route.end_id", endID),
	))
	defer span.End()

	if m := metrics.Get(); m != nil {
		m.RouteRequestsTotal.Add(ctx, 1)
	}

	route := &models.Route{
		Points: []models.RoutePoint{},
		Steps:  []models.DirectionStep{},
		Totals: models.RouteTotals{Distance: "0 m", Time: "0 min"},
	}

	start := s.catalog.FindByID(startID)
	end := s.catalog.FindByID(endID)
	if start == nil || end == nil {
		s.logger.Warn("Route endpoint not found",
			zap.Int("start_id", startID),
			zap.Int("end_id", endID))
		span.SetStatus(codes.Ok, "Endpoint not found, empty route")
		return route
	}

	route.Points = interpolate(start, end)
	route.Steps = s.buildSteps(start, end)
	route.Totals = sumTotals(route.Steps)
	route.Viewport = viewport(start, end)

	s.logger.Info("Route synthesized",
		zap.String("from", start.Name),
		zap.String("to", end.Name),
		zap.String("distance", route.Totals.Distance),
		zap.String("time", route.Totals.Time))
	span.SetStatus(codes.Ok, "Route synthesized")
	return route
}

// interpolate builds the 5-point polyline. The lng fractions at the second
// and fourth points are deliberately offset from the lat fractions to fake a
// gentle curve on the map.
func interpolate(start, end *models.LocationRecord) []models.RoutePoint {
	latDiff := end.Lat - start.Lat
	lngDiff := end.Lng - start.Lng
	return []models.RoutePoint{
		{Lat: start.Lat, Lng: start.Lng},
		{Lat: start.Lat + latDiff*0.25, Lng: start.Lng + lngDiff*0.2},
		{Lat: start.Lat + latDiff*0.5, Lng: start.Lng + lngDiff*0.5},
		{Lat: start.Lat + latDiff*0.75, Lng: start.Lng + lngDiff*0.8},
		{Lat: end.Lat, Lng: end.Lng},
	}
}

// buildSteps fills the fixed 6-step template. Heading comes from the sign of
// the coordinate deltas; the landmark and turn direction are coin flips.
func (s *ServiceImpl) buildSteps(start, end *models.LocationRecord) []models.DirectionStep {
	ns := "south"
	if start.Lat < end.Lat {
		ns = "north"
	}
	ew := "west"
	if start.Lng < end.Lng {
		ew = "east"
	}

	return []models.DirectionStep{
		{
			Instruction: fmt.Sprintf("Start at %s", start.Name),
			Distance:    "0 m",
			Time:        "0 min",
		},
		{
			Instruction: fmt.Sprintf("Head %s%s along the main path", ns, ew),
			Distance:    "150 m",
			Time:        "2 min",
		},
		{
			Instruction: fmt.Sprintf("Continue straight past the %s", s.pick("fountain", "garden")),
			Distance:    "100 m",
			Time:        "1 min",
		},
		{
			Instruction: fmt.Sprintf("Turn %s at the intersection", s.pick("left", "right")),
			Distance:    "50 m",
			Time:        "1 min",
		},
		{
			Instruction: fmt.Sprintf("Continue to %s", end.Name),
			Distance:    "150 m",
			Time:        "2 min",
		},
		{
			Instruction: fmt.Sprintf("Arrive at your destination: %s", end.Name),
			Distance:    "0 m",
			Time:        "0 min",
		},
	}
}

func (s *ServiceImpl) pick(a, b string) string {
	if s.rng.Intn(2) == 0 {
		return a
	}
	return b
}

// sumTotals aggregates the leading integer of each step's distance and time
// string. This is a text aggregation over the step literals, not a geodesic
// distance.
func sumTotals(steps []models.DirectionStep) models.RouteTotals {
	totalDistance := 0
	totalTime := 0
	for _, step := range steps {
		totalDistance += leadingInt(step.Distance)
		totalTime += leadingInt(step.Time)
	}
	return models.RouteTotals{
		Distance: fmt.Sprintf("%d m", totalDistance),
		Time:     fmt.Sprintf("%d min", totalTime),
	}
}

func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

// viewport centers the map on the route midpoint and picks a zoom level from
// the rough span of the route in km.
func viewport(start, end *models.LocationRecord) *models.MapViewport {
	maxDiff := math.Max(math.Abs(start.Lat-end.Lat), math.Abs(start.Lng-end.Lng)) * degreesToKm

	zoom := 14
	switch {
	case maxDiff < 0.2:
		zoom = 16
	case maxDiff < 0.5:
		zoom = 15
	}

	return &models.MapViewport{
		CenterLat: (start.Lat + end.Lat) / 2,
		CenterLng: (start.Lng + end.Lng) / 2,
		Zoom:      zoom,
	}
}
