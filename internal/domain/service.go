// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("participant already signed up")
	// ErrNotRegistered indicates the email is not on the activity's roster.
	ErrNotRegistered = errors.New("participant not signed up")
)

// DirectoryRepository captures the operations the activity directory supports.
// The activity-name set is fixed at construction; only rosters mutate.
type DirectoryRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*Activity, error)
	Unregister(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates signup workflows.
type Service struct {
	repo DirectoryRepository
}

// NewService constructs a Service.
func NewService(repo DirectoryRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns the full directory keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup registers email for the named activity and returns the updated
// activity. Capacity is advisory and deliberately not checked: a roster may
// grow past MaxParticipants.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	return s.repo.Signup(ctx, name, email)
}

// Unregister removes email from the named activity's roster and returns the
// updated activity. A later Signup for the same pair succeeds again.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	return s.repo.Unregister(ctx, name, email)
}
