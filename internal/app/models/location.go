package models

// LocationRecord is one campus point of interest. Records are seeded at
// startup and never mutated or persisted.
type LocationRecord struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	Lat          float64        `json:"lat"`
	Lng          float64        `json:"lng"`
	Icon         string         `json:"icon"`
	ImageURL     string         `json:"image_url,omitempty"`
	Features     []string       `json:"features,omitempty"`
	OpeningHours []OpeningHours `json:"opening_hours,omitempty"`
	ContactInfo  string         `json:"contact_info,omitempty"`
	IsLandmark   bool           `json:"is_landmark,omitempty"`
}

// OpeningHours is one row of a location's opening schedule.
type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// ScoredLocation is a catalog record annotated with its search relevance
// score. Score is zero when the record was returned without scoring
// (empty query, category filter).
type ScoredLocation struct {
	LocationRecord
	Score int `json:"score"`
}

// MapViewport tells a map client where to recenter after a search or a
// route request.
type MapViewport struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`
}

// SearchResponse carries the ordered results of a scored search plus the
// auto-selection, when one was made.
type SearchResponse struct {
	Query    string           `json:"query"`
	Results  []ScoredLocation `json:"results"`
	Selected *LocationRecord  `json:"selected,omitempty"`
	Viewport *MapViewport     `json:"viewport,omitempty"`
}
