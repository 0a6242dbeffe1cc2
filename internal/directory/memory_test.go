package directory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func chessClub() domain.Activity {
	return domain.Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 2,
		Participants:    []string{},
	}
}

func TestSeedCatalog(t *testing.T) {
	store := New()

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, activities, "Chess Club")
	require.Contains(t, activities, "Programming Class")

	chess := activities["Chess Club"]
	require.NotEmpty(t, chess.Description)
	require.NotEmpty(t, chess.Schedule)
	require.Positive(t, chess.MaxParticipants)
	require.NotNil(t, chess.Participants)
}

func TestSignupAppendsInOrder(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)
	activity, err := store.Signup(ctx, "Chess Club", "b@mergington.edu")
	require.NoError(t, err)

	require.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, activity.Participants)
}

func TestSignupDuplicateRejected(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)

	_, err = store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	activity, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 1)
}

func TestSignupUnknownActivity(t *testing.T) {
	store := WithActivities(chessClub())

	_, err := store.Signup(context.Background(), "Knitting Circle", "a@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestUnregisterRemovesPreservingOrder(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	for _, email := range []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"} {
		_, err := store.Signup(ctx, "Chess Club", email)
		require.NoError(t, err)
	}

	activity, err := store.Unregister(ctx, "Chess Club", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "c@mergington.edu"}, activity.Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	store := WithActivities(chessClub())

	_, err := store.Unregister(context.Background(), "Chess Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := WithActivities(chessClub())

	_, err := store.Unregister(context.Background(), "Knitting Circle", "a@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestResignupAfterUnregister(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)
	_, err = store.Unregister(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)

	activity, err := store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu"}, activity.Participants)
}

func TestCapacityNotEnforced(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	// MaxParticipants is 2; every signup past it still succeeds.
	for i := 0; i < 5; i++ {
		_, err := store.Signup(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	activity, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 5)
}

func TestListReturnsCopies(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.NoError(t, err)

	listed, err := store.List(ctx)
	require.NoError(t, err)
	chess := listed["Chess Club"]
	chess.Participants[0] = "tampered@mergington.edu"

	activity, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu"}, activity.Participants)
}

func TestConcurrentSignupKeepsRosterUnique(t *testing.T) {
	store := WithActivities(chessClub())
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Signup(ctx, "Chess Club", "race@mergington.edu")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		}
	}
	require.Equal(t, 1, successes)

	activity, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"race@mergington.edu"}, activity.Participants)
}
