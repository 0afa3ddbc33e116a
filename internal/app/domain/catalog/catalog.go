package catalog

import (
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
)

// Default map viewport over the Legon campus.
const (
	DefaultCenterLat = 5.6515
	DefaultCenterLng = -0.1846
	DefaultZoom      = 15
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the static campus location catalog.
type Service interface {
	All() []models.LocationRecord
	FindByID(id int) *models.LocationRecord
	FilterByCategory(category string) []models.LocationRecord
	Categories() []string
}

type ServiceImpl struct {
	records []models.LocationRecord
	logger  *zap.Logger
}

func NewService(logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		records: seedLocations(),
		logger:  logger,
	}
}

// All returns the catalog in seed order.
func (s *ServiceImpl) All() []models.LocationRecord {
	out := make([]models.LocationRecord, len(s.records))
	copy(out, s.records)
	return out
}

// FindByID returns the record with the given id, or nil when absent.
func (s *ServiceImpl) FindByID(id int) *models.LocationRecord {
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec
		}
	}
	return nil
}

// FilterByCategory returns records whose category matches exactly.
// "All" and the empty string return the whole catalog.
func (s *ServiceImpl) FilterByCategory(category string) []models.LocationRecord {
	if category == "" || category == "All" {
		return s.All()
	}
	var out []models.LocationRecord
	for _, rec := range s.records {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

// Categories returns "All" followed by the distinct categories in seed order.
func (s *ServiceImpl) Categories() []string {
	out := []string{"All"}
	seen := make(map[string]bool)
	for _, rec := range s.records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			out = append(out, rec.Category)
		}
	}
	return out
}

func seedLocations() []models.LocationRecord {
	return []models.LocationRecord{
		{
			ID:          1,
			Name:        "Balme Library",
			Category:    "Academic",
			Description: "The main university library with extensive collections and study spaces.",
			Lat:         5.6505,
			Lng:         -0.1856,
			Icon:        "blue",
			ImageURL:    "https://images.unsplash.com/photo-1507842217343-583bb7270b66?q=80&w=2940&auto=format&fit=crop",
			Features:    []string{"Study Spaces", "Computer Lab", "Research Materials", "Group Rooms"},
			OpeningHours: []models.OpeningHours{
				{Days: "Monday - Friday", Hours: "8:00 AM - 10:00 PM"},
				{Days: "Saturday", Hours: "9:00 AM - 5:00 PM"},
				{Days: "Sunday", Hours: "12:00 PM - 6:00 PM"},
			},
			ContactInfo: "Tel: +233-302-123456 | Email: balmelibrary@ug.edu.gh",
			IsLandmark:  true,
		},
		{
			ID:          2,
			Name:        "Great Hall",
			Category:    "Administrative",
			Description: "The university's main ceremonial hall used for graduations and major events.",
			Lat:         5.6515,
			Lng:         -0.1866,
			Icon:        "red",
			ImageURL:    "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?q=80&w=2070&auto=format&fit=crop",
			Features:    []string{"Auditorium", "Conference Rooms", "Event Space"},
			OpeningHours: []models.OpeningHours{
				{Days: "Monday - Friday", Hours: "9:00 AM - 5:00 PM"},
				{Days: "Weekends", Hours: "Closed (except for events)"},
			},
			ContactInfo: "Tel: +233-302-987654 | Email: greathall@ug.edu.gh",
			IsLandmark:  true,
		},
		{
			ID:          3,
			Name:        "JQB Building",
			Category:    "Academic",
			Description: "Houses various departments including Computer Science and Mathematics.",
			Lat:         5.6495,
			Lng:         -0.1876,
			Icon:        "blue",
			ImageURL:    "https://images.unsplash.com/photo-1562774053-701939374585?q=80&w=2086&auto=format&fit=crop",
			Features:    []string{"Lecture Rooms", "Computer Labs", "Faculty Offices"},
			OpeningHours: []models.OpeningHours{
				{Days: "Monday - Friday", Hours: "7:00 AM - 9:00 PM"},
				{Days: "Saturday", Hours: "8:00 AM - 2:00 PM"},
				{Days: "Sunday", Hours: "Closed"},
			},
			ContactInfo: "Tel: +233-302-456789 | Email: jqb@ug.edu.gh",
		},
		{
			ID:          4,
			Name:        "Commonwealth Hall",
			Category:    "Residence",
			Description: "A historic male hall of residence known as 'Vandal City'.",
			Lat:         5.6525,
			Lng:         -0.1846,
			Icon:        "green",
			ImageURL:    "https://images.unsplash.com/photo-1551239262-61cf00e9d4cb?q=80&w=2874&auto=format&fit=crop",
			Features:    []string{"Dormitories", "Common Room", "Dining Hall", "Study Areas"},
			OpeningHours: []models.OpeningHours{
				{Days: "All Days", Hours: "24 Hours (for residents)"},
				{Days: "Visiting Hours", Hours: "10:00 AM - 8:00 PM"},
			},
			ContactInfo: "Tel: +233-302-345678 | Email: commonwealth@ug.edu.gh",
		},
		{
			ID:          5,
			Name:        "Akuafo Hall",
			Category:    "Residence",
			Description: "One of the original halls of residence on campus.",
			Lat:         5.6535,
			Lng:         -0.1836,
			Icon:        "green",
			ImageURL:    "https://images.unsplash.com/photo-1612208695882-02f2322b7fee?q=80&w=2874&auto=format&fit=crop",
			Features:    []string{"Dormitories", "Social Areas", "Dining Services"},
			OpeningHours: []models.OpeningHours{
				{Days: "All Days", Hours: "24 Hours (for residents)"},
				{Days: "Visiting Hours", Hours: "11:00 AM - 8:00 PM"},
			},
			ContactInfo: "Tel: +233-302-567890 | Email: akuafo@ug.edu.gh",
		},
		{
			ID:          6,
			Name:        "Business School",
			Category:    "Academic",
			Description: "The university's business education center with modern facilities.",
			Lat:         5.6545,
			Lng:         -0.1826,
			Icon:        "blue",
			ImageURL:    "https://images.unsplash.com/photo-1497366754035-f200968a6e72?q=80&w=2069&auto=format&fit=crop",
			Features:    []string{"Lecture Halls", "Case Study Rooms", "Computer Labs", "Library"},
			OpeningHours: []models.OpeningHours{
				{Days: "Monday - Friday", Hours: "8:00 AM - 8:00 PM"},
				{Days: "Saturday", Hours: "9:00 AM - 4:00 PM"},
				{Days: "Sunday", Hours: "Closed"},
			},
			ContactInfo: "Tel: +233-302-678901 | Email: business@ug.edu.gh",
		},
		{
			ID:          7,
			Name:        "Main Gate",
			Category:    "Landmark",
			Description: "The primary entrance to the university campus.",
			Lat:         5.6555,
			Lng:         -0.1816,
			Icon:        "gold",
			ImageURL:    "https://images.unsplash.com/photo-1587162146766-e06b1189b907?q=80&w=2071&auto=format&fit=crop",
			Features:    []string{"Security Post", "Information Center", "Shuttle Stop"},
			OpeningHours: []models.OpeningHours{
				{Days: "All Days", Hours: "24 Hours"},
			},
			ContactInfo: "Security Tel: +233-302-789012",
			IsLandmark:  true,
		},
	}
}
