package core

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestService() *Service {
	return NewService(fixtureStore(), clock)
}

func TestService_AddReview(t *testing.T) {
	svc := newTestService()

	r, err := svc.AddReview(alice, ReviewInput{ResourceID: "food-1", Rating: 8})
	require.NoError(t, err)
	assert.Equal(t, "Alice", r.Author)
	assert.Equal(t, "CHW", r.AuthorRole)

	_, err = svc.AddReview(alice, ReviewInput{ResourceID: "food-1", Rating: 6})
	require.NoError(t, err)

	assert.Equal(t, 7.0, svc.Score("food-1"))
	assert.Equal(t, NeutralScore, svc.Score("mh-1"))
	assert.Len(t, svc.Reviews("food-1"), 2)
}

func TestService_AddReviewErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddReview(alice, ReviewInput{ResourceID: "missing", Rating: 5})
	assert.ErrorIs(t, err, ErrResourceNotFound)

	_, err = svc.AddReview(nil, ReviewInput{ResourceID: "food-1", Rating: 5})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.AddReview(alice, ReviewInput{ResourceID: "food-1", Rating: 42})
	assert.ErrorIs(t, err, ErrInvalidRating)

	assert.Zero(t, svc.Ledger().Len())
}

func TestService_ConcurrentReviews(t *testing.T) {
	svc := newTestService()
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < 50; i++ {
		actor := &Actor{Name: fmt.Sprintf("user-%d", i)}
		g.Go(func() error {
			_, err := svc.AddReview(actor, ReviewInput{ResourceID: "mh-1", Rating: 6})
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 50, svc.Ledger().Len())
	assert.Equal(t, 6.0, svc.Score("mh-1"))
}

func TestService_ScoresSnapshot(t *testing.T) {
	svc := newTestService()
	_, err := svc.AddReview(alice, ReviewInput{ResourceID: "legal-1", Rating: 2})
	require.NoError(t, err)

	scores := svc.Scores(svc.Query(AllQuery))

	assert.Len(t, scores, 5)
	assert.Equal(t, 2.0, scores["legal-1"])
	assert.Equal(t, NeutralScore, scores["food-1"])
}

func TestService_ToggleSave(t *testing.T) {
	svc := newTestService()
	bob := &Actor{Name: "Bob"}

	saved, likes, err := svc.ToggleSave(alice, "mh-1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, likes)

	saved, likes, err = svc.ToggleSave(bob, "mh-1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 2, likes)

	saved, likes, err = svc.ToggleSave(alice, "mh-1")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 1, likes)

	assert.False(t, svc.IsSaved(alice, "mh-1"))
	assert.True(t, svc.IsSaved(bob, "mh-1"))
	assert.Equal(t, 1, svc.Likes("mh-1"))
	assert.Zero(t, svc.Likes("food-1"))
}

func TestService_ToggleSaveErrors(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ToggleSave(nil, "mh-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = svc.ToggleSave(&Actor{}, "mh-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = svc.ToggleSave(alice, "missing")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestService_SavedInStoreOrder(t *testing.T) {
	svc := newTestService()

	for _, id := range []string{"odd-1", "food-1", "legal-1"} {
		_, _, err := svc.ToggleSave(alice, id)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"food-1", "legal-1", "odd-1"}, ids(svc.Saved(alice)))
	assert.Empty(t, svc.Saved(&Actor{Name: "Nobody"}))
	assert.Empty(t, svc.Saved(nil))
}

func TestService_SavedKeyedByEmail(t *testing.T) {
	svc := newTestService()
	a := &Actor{Name: "Alice A.", Email: "alice@example.org"}

	_, _, err := svc.ToggleSave(a, "food-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"food-1"}, ids(svc.Saved(alice)), "same email, different display name")
}

func TestService_ConcurrentToggleKeepsLikesNonNegative(t *testing.T) {
	svc := newTestService()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		actor := &Actor{Name: fmt.Sprintf("user-%d", i)}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = svc.ToggleSave(actor, "food-1")
			_, _, _ = svc.ToggleSave(actor, "food-1")
		}()
	}
	wg.Wait()

	assert.Zero(t, svc.Likes("food-1"))
}

func TestService_Get(t *testing.T) {
	svc := newTestService()

	r, err := svc.Get("food-1")
	require.NoError(t, err)
	assert.Equal(t, "food-1", r.ID)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
