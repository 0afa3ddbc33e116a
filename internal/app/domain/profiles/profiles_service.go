package profiles

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
	"github.com/felixashong/campus-navigate/internal/app/observability/metrics"
)

// SnapshotKey is the fixed application identifier the snapshot row is keyed
// by. It matches the storage key the original web client used.
const SnapshotKey = "campus-navigate-profile"

// recentSearchLimit bounds the recent-search history. The original client had
// two call sites with bounds 5 and 6; the store-level bound of 6 is the one
// that ever reached persistence, so it wins.
const recentSearchLimit = 6

const dateLayout = "2006-01-02"

var _ Service = (*ServiceImpl)(nil)

// Service owns the single user's persisted profile state: identity, saved
// locations, recent searches and settings. All operations are total; lookups
// that miss are no-ops, never errors.
type Service interface {
	Profile() models.UserProfile
	SavedLocations() []models.SavedLocation
	RecentSearches() []string
	Settings() models.UserSettings
	Snapshot() models.ProfileSnapshot

	UpdateProfile(ctx context.Context, params models.UpdateUserProfileParams) models.UserProfile
	AddSavedLocation(ctx context.Context, loc models.SavedLocation) models.SavedLocation
	RemoveSavedLocation(ctx context.Context, id int)
	AddRecentSearch(ctx context.Context, term string)
	RemoveRecentSearch(ctx context.Context, term string)
	ClearRecentSearches(ctx context.Context)
	UpdateSettings(ctx context.Context, params models.UpdateUserSettingsParams) models.UserSettings
}

// ServiceImpl keeps the snapshot in memory behind a mutex and writes the
// whole snapshot through the repository after every mutation. The in-memory
// state is updated first, so reads always observe the latest mutation even
// when the durable write is still in flight or fails; a failed write can lose
// at most that one mutation.
type ServiceImpl struct {
	mu     sync.RWMutex
	snap   models.ProfileSnapshot
	repo   Repository
	logger *zap.Logger
}

// NewService loads the persisted snapshot, seeding and persisting the default
// one when no row exists yet.
func NewService(ctx context.Context, repo Repository, logger *zap.Logger) (*ServiceImpl, error) {
	s := &ServiceImpl{
		repo:   repo,
		logger: logger,
	}

	snap, err := repo.GetSnapshot(ctx, SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile snapshot: %w", err)
	}
	if snap == nil {
		logger.Info("No profile snapshot found, seeding defaults", zap.String("app_id", SnapshotKey))
		seeded := seedSnapshot()
		if err := repo.SaveSnapshot(ctx, SnapshotKey, seeded); err != nil {
			return nil, fmt.Errorf("failed to persist seed snapshot: %w", err)
		}
		snap = &seeded
	}
	s.snap = *snap

	logger.Info("Profile snapshot loaded",
		zap.Int("saved_locations", len(s.snap.SavedLocations)),
		zap.Int("recent_searches", len(s.snap.RecentSearches)))
	return s, nil
}

func (s *ServiceImpl) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.UserProfile
}

func (s *ServiceImpl) SavedLocations() []models.SavedLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SavedLocation, len(s.snap.SavedLocations))
	copy(out, s.snap.SavedLocations)
	return out
}

func (s *ServiceImpl) RecentSearches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.snap.RecentSearches))
	copy(out, s.snap.RecentSearches)
	return out
}

func (s *ServiceImpl) Settings() models.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.UserSettings
}

func (s *ServiceImpl) Snapshot() models.ProfileSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// UpdateProfile shallow-merges the non-nil fields into the profile.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, params models.UpdateUserProfileParams) models.UserProfile {
	s.mu.Lock()
	p := &s.snap.UserProfile
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Email != nil {
		p.Email = *params.Email
	}
	if params.Department != nil {
		p.Department = *params.Department
	}
	if params.Year != nil {
		p.Year = *params.Year
	}
	if params.Bio != nil {
		p.Bio = *params.Bio
	}
	updated := s.snap.UserProfile
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "update_profile", snap)
	return updated
}

// AddSavedLocation saves a bookmark, stamped with today's date. Saving an id
// that already exists only restamps that entry's last-visited date.
func (s *ServiceImpl) AddSavedLocation(ctx context.Context, loc models.SavedLocation) models.SavedLocation {
	today := time.Now().Format(dateLayout)

	s.mu.Lock()
	var saved models.SavedLocation
	found := false
	for i := range s.snap.SavedLocations {
		if s.snap.SavedLocations[i].ID == loc.ID {
			s.snap.SavedLocations[i].LastVisited = today
			saved = s.snap.SavedLocations[i]
			found = true
			break
		}
	}
	if !found {
		loc.LastVisited = today
		s.snap.SavedLocations = append(s.snap.SavedLocations, loc)
		saved = loc
	}
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "add_saved_location", snap)
	return saved
}

// RemoveSavedLocation removes all entries with the given id. Removing an
// unknown id is a no-op.
func (s *ServiceImpl) RemoveSavedLocation(ctx context.Context, id int) {
	s.mu.Lock()
	kept := s.snap.SavedLocations[:0]
	for _, loc := range s.snap.SavedLocations {
		if loc.ID != id {
			kept = append(kept, loc)
		}
	}
	s.snap.SavedLocations = kept
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "remove_saved_location", snap)
}

// AddRecentSearch records a search term at the front of the history. An
// existing case-insensitive duplicate is dropped first, so the newest casing
// wins, and the list is truncated to its bound.
func (s *ServiceImpl) AddRecentSearch(ctx context.Context, term string) {
	s.mu.Lock()
	kept := make([]string, 0, len(s.snap.RecentSearches)+1)
	kept = append(kept, term)
	for _, existing := range s.snap.RecentSearches {
		if !strings.EqualFold(existing, term) {
			kept = append(kept, existing)
		}
	}
	if len(kept) > recentSearchLimit {
		kept = kept[:recentSearchLimit]
	}
	s.snap.RecentSearches = kept
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "add_recent_search", snap)
}

// RemoveRecentSearch removes an exact (case-sensitive) match, if present.
func (s *ServiceImpl) RemoveRecentSearch(ctx context.Context, term string) {
	s.mu.Lock()
	kept := s.snap.RecentSearches[:0]
	for _, existing := range s.snap.RecentSearches {
		if existing != term {
			kept = append(kept, existing)
		}
	}
	s.snap.RecentSearches = kept
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "remove_recent_search", snap)
}

// ClearRecentSearches empties the history.
func (s *ServiceImpl) ClearRecentSearches(ctx context.Context) {
	s.mu.Lock()
	s.snap.RecentSearches = []string{}
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "clear_recent_searches", snap)
}

// UpdateSettings shallow-merges the non-nil toggles. Unspecified keys retain
// their prior value.
func (s *ServiceImpl) UpdateSettings(ctx context.Context, params models.UpdateUserSettingsParams) models.UserSettings {
	s.mu.Lock()
	st := &s.snap.UserSettings
	if params.Notifications != nil {
		st.Notifications = *params.Notifications
	}
	if params.LocationServices != nil {
		st.LocationServices = *params.LocationServices
	}
	if params.SaveSearchHistory != nil {
		st.SaveSearchHistory = *params.SaveSearchHistory
	}
	if params.DarkMode != nil {
		st.DarkMode = *params.DarkMode
	}
	if params.ShowDistanceInMetric != nil {
		st.ShowDistanceInMetric = *params.ShowDistanceInMetric
	}
	updated := s.snap.UserSettings
	snap := s.snap.Clone()
	s.mu.Unlock()

	s.persist(ctx, "update_settings", snap)
	return updated
}

// persist writes the whole snapshot through the repository. Failures are
// logged, not surfaced: the in-memory state already moved on and the next
// mutation rewrites the full snapshot anyway.
func (s *ServiceImpl) persist(ctx context.Context, op string, snap models.ProfileSnapshot) {
	ctx, span := otel.Tracer("ProfilesService").Start(ctx, "persist")
	span.SetAttributes(attribute.String("profile.mutation", op))
	defer span.End()

	if m := metrics.Get(); m != nil {
		m.ProfileMutationsTotal.Add(ctx, 1)
	}

	if err := s.repo.SaveSnapshot(ctx, SnapshotKey, snap); err != nil {
		s.logger.Error("Failed to persist profile snapshot",
			zap.String("mutation", op),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Snapshot write failed")
		return
	}
	span.SetStatus(codes.Ok, "Snapshot persisted")
}

// seedSnapshot is the initial single-user state, installed on first run.
func seedSnapshot() models.ProfileSnapshot {
	return models.ProfileSnapshot{
		UserProfile: models.UserProfile{
			Name:       "Felix Ashong",
			Email:      "felix.ashong@st.ug.edu.gh",
			Department: "Computer Science",
			Year:       "Second Year",
			Bio:        "Computer Science student passionate about technology and exploring new places on campus.",
		},
		SavedLocations: []models.SavedLocation{
			{
				ID:          1,
				Name:        "Balme Library",
				Category:    "Academic",
				Notes:       "My favorite study spot with quiet areas on the 3rd floor.",
				LastVisited: "2025-03-28",
			},
			{
				ID:          2,
				Name:        "Business School",
				Category:    "Academic",
				Notes:       "Marketing class in Room 203 every Tuesday and Thursday.",
				LastVisited: "2025-04-01",
			},
			{
				ID:          3,
				Name:        "Night Market",
				Category:    "Food",
				Notes:       "Great place for waakye and other local dishes at affordable prices.",
				LastVisited: "2025-03-30",
			},
			{
				ID:          4,
				Name:        "University Sports Stadium",
				Category:    "Sports",
				Notes:       "Soccer practice every Wednesday at 4pm.",
				LastVisited: "2025-03-25",
			},
		},
		RecentSearches: []string{"Great Hall", "JQB Building", "Science Faculty", "Commonwealth Hall", "Banking Square", "Main Gate"},
		UserSettings: models.UserSettings{
			Notifications:        true,
			LocationServices:     true,
			SaveSearchHistory:    true,
			DarkMode:             false,
			ShowDistanceInMetric: true,
		},
	}
}
