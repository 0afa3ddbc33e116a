package models

// RoutePoint is one vertex of a route polyline.
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DirectionStep is one templated instruction of a synthesized route.
// Distance and Time are display strings with units ("150 m", "2 min").
type DirectionStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Time        string `json:"time"`
}

// RouteTotals aggregates the step distances and times.
type RouteTotals struct {
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

// Route is a synthesized route between two catalog records. It is derived
// state, recomputed on every request and never stored. An empty route
// (no points, no steps) means the route could not be computed.
type Route struct {
	Points   []RoutePoint    `json:"points"`
	Steps    []DirectionStep `json:"steps"`
	Totals   RouteTotals     `json:"totals"`
	Viewport *MapViewport    `json:"viewport,omitempty"`
}

// Empty reports whether the route was not computed (unknown endpoint).
func (r *Route) Empty() bool {
	return len(r.Points) == 0 && len(r.Steps) == 0
}
