package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = &Actor{Name: "Alice", Email: "alice@example.org", Role: "CHW"}

func TestScore_NoReviewsIsNeutral(t *testing.T) {
	assert.Equal(t, 5.0, Score("food-1", Ledger{}))
}

func TestScore_Mean(t *testing.T) {
	var l Ledger
	var err error
	l, _, err = l.Add(alice, ReviewInput{ResourceID: "food-1", Rating: 8}, fixedNow)
	require.NoError(t, err)
	l, _, err = l.Add(alice, ReviewInput{ResourceID: "food-1", Rating: 6}, fixedNow)
	require.NoError(t, err)
	l, _, err = l.Add(alice, ReviewInput{ResourceID: "mh-1", Rating: 1}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 7.0, Score("food-1", l))
	assert.Equal(t, 1.0, Score("mh-1", l))
	assert.Equal(t, map[string]float64{"food-1": 7, "mh-1": 1, "legal-1": 5}, Scores([]string{"food-1", "mh-1", "legal-1"}, l))
}

func TestAddReview_RequiresActor(t *testing.T) {
	var l Ledger
	l, _, _ = l.Add(alice, ReviewInput{ResourceID: "food-1", Rating: 9}, fixedNow)

	tests := []struct {
		name  string
		actor *Actor
	}{
		{"nil actor", nil},
		{"empty name", &Actor{Email: "x@example.org"}},
		{"blank name", &Actor{Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := AddReview(l, tt.actor, ReviewInput{ResourceID: "food-1", Rating: 3}, fixedNow)
			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.Equal(t, 1, next.Len())
			assert.Equal(t, 9.0, Score("food-1", next))
		})
	}
}

func TestAddReview_RatingRange(t *testing.T) {
	for _, rating := range []int{0, -1, 11, 100} {
		l, _, err := AddReview(Ledger{}, alice, ReviewInput{ResourceID: "food-1", Rating: rating}, fixedNow)
		assert.True(t, errors.Is(err, ErrInvalidRating), "rating %d", rating)
		assert.Zero(t, l.Len())
	}
	for _, rating := range []int{MinRating, MaxRating} {
		_, _, err := AddReview(Ledger{}, alice, ReviewInput{ResourceID: "food-1", Rating: rating}, fixedNow)
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestAddReview_Attribution(t *testing.T) {
	actor := &Actor{Name: " Bob ", Picture: "https://img/bob.png"}

	_, r, err := AddReview(Ledger{}, actor, ReviewInput{
		ResourceID: "food-1",
		Rating:     7,
		Tags:       []string{"Reliable", " Reliable", "", "Fast Response"},
		Comment:    "  quick intake  ",
	}, fixedNow)

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Bob", r.Author)
	assert.Equal(t, DefaultRole, r.AuthorRole)
	assert.Equal(t, "https://img/bob.png", r.AuthorPicture)
	assert.Equal(t, []string{"Reliable", "Fast Response"}, r.Tags)
	assert.Equal(t, "quick intake", r.Comment)
	assert.Equal(t, "2025-03-14", r.Date)
	assert.True(t, r.Verified)
}

func TestLedger_Persistent(t *testing.T) {
	var empty Ledger
	one, first, _ := empty.Add(alice, ReviewInput{ResourceID: "food-1", Rating: 4}, fixedNow)
	two, second, _ := one.Add(alice, ReviewInput{ResourceID: "food-1", Rating: 10}, fixedNow)

	assert.Zero(t, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())
	assert.Equal(t, 4.0, Score("food-1", one))
	assert.Equal(t, 7.0, Score("food-1", two))

	got := two.ForResource("food-1")
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest first")
	assert.Equal(t, first.ID, got[1].ID)
	assert.Empty(t, two.ForResource("mh-1"))
	assert.Len(t, two.Reviews(), 2)
}
