package models

// SavedLocation is a user's bookmark of a catalog record. Name and category
// are denormalized copies taken at save time; they are not kept in sync with
// the catalog.
type SavedLocation struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
	LastVisited string `json:"last_visited"` // YYYY-MM-DD
}

// UserSettings is the fixed set of user toggles. All keys are always
// populated.
type UserSettings struct {
	Notifications        bool `json:"notifications"`
	LocationServices     bool `json:"location_services"`
	SaveSearchHistory    bool `json:"save_search_history"`
	DarkMode             bool `json:"dark_mode"`
	ShowDistanceInMetric bool `json:"show_distance_in_metric"`
}

// UserProfile is the single user's identity record.
type UserProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Bio        string `json:"bio"`
}

// ProfileSnapshot is the whole persisted profile state. Every mutation
// rewrites the snapshot as one unit so a reload reconstructs identical state.
type ProfileSnapshot struct {
	UserProfile    UserProfile     `json:"user_profile"`
	SavedLocations []SavedLocation `json:"saved_locations"`
	RecentSearches []string        `json:"recent_searches"`
	UserSettings   UserSettings    `json:"user_settings"`
}

// Clone returns a deep copy of the snapshot.
func (s ProfileSnapshot) Clone() ProfileSnapshot {
	out := s
	out.SavedLocations = make([]SavedLocation, len(s.SavedLocations))
	copy(out.SavedLocations, s.SavedLocations)
	out.RecentSearches = make([]string, len(s.RecentSearches))
	copy(out.RecentSearches, s.RecentSearches)
	return out
}

// UpdateUserProfileParams is a partial profile update. Nil fields keep their
// prior value.
type UpdateUserProfileParams struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Year       *string `json:"year"`
	Bio        *string `json:"bio"`
}

// UpdateUserSettingsParams is a partial settings update. Nil fields keep
// their prior value.
type UpdateUserSettingsParams struct {
	Notifications        *bool `json:"notifications"`
	LocationServices     *bool `json:"location_services"`
	SaveSearchHistory    *bool `json:"save_search_history"`
	DarkMode             *bool `json:"dark_mode"`
	ShowDistanceInMetric *bool `json:"show_distance_in_metric"`
}
