// Package directory holds the in-memory activity directory. The catalog is
// seeded once at construction and lives for the process lifetime; only the
// participant rosters mutate.
package directory

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// Directory stores activities in memory behind a single lock so concurrent
// signups cannot duplicate a roster entry.
type Directory struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New constructs a Directory populated with the school catalog.
func New() *Directory {
	return WithActivities(seedCatalog()...)
}

// WithActivities constructs a Directory holding exactly the given activities.
func WithActivities(activities ...domain.Activity) *Directory {
	d := &Directory{activities: make(map[string]*domain.Activity, len(activities))}
	for _, activity := range activities {
		clone := activity.Clone()
		d.activities[clone.Name] = &clone
	}
	return d
}

// List returns a copy of the full directory keyed by activity name. Returned
// activities never alias the shared rosters.
func (d *Directory) List(ctx context.Context) (map[string]domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]domain.Activity, len(d.activities))
	for name, activity := range d.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns a copy of the named activity, or ErrActivityNotFound.
func (d *Directory) Get(ctx context.Context, name string) (*domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	activity, ok := d.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	clone := activity.Clone()
	return &clone, nil
}

// Signup appends email to the named activity's roster. MaxParticipants is
// advisory only and never checked here.
func (d *Directory) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.IsRegistered(email) {
		return nil, domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	clone := activity.Clone()
	return &clone, nil
}

// Unregister removes email from the named activity's roster, preserving the
// order of the remaining participants.
func (d *Directory) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotRegistered
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	clone := activity.Clone()
	return &clone, nil
}

// seedCatalog returns the fixed set of activities offered at Mergington High.
func seedCatalog() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and compete in basketball games",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and play friendly matches",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act in plays and improve performance skills",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"noah@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and science fair preparation",
			Schedule:        "Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"james@mergington.edu", "charlotte@mergington.edu"},
		},
	}
}
