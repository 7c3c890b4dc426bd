package core

// reviews.go holds the review ledger and score aggregation.
//
// The ledger is a persistent singly linked list: AddReview returns a new
// Ledger whose head is the new review and whose tail is the old ledger.
// Old values stay valid and unchanged, so a reader holding a Ledger always
// sees a consistent snapshot without locking.

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NeutralScore is the score of a resource nobody has reviewed yet: the
// midpoint of the 1-10 scale, not zero.
const NeutralScore = 5.0

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// DefaultRole is used when an actor has not picked a role.
const DefaultRole = "Other"

// Roles are the community roles a reviewer can pick.
var Roles = []string{
	"CHW",
	"Certified CHW",
	"Health Navigator",
	"Administrative Coordinator",
	"Clinical Staff",
	"Social Worker",
	DefaultRole,
}

// PositiveTags and NegativeTags are the suggested review tags.
var (
	PositiveTags = []string{"Fast Response", "Easy Application", "Multilingual Staff", "Welcoming Environment", "Accessible", "High Quality Care", "Cultural Competence", "Reliable"}
	NegativeTags = []string{"Long Waitlist", "Complex Forms", "Phone Unanswered", "Limited Hours", "Language Barrier", "Strict Eligibility", "Unwelcoming", "Outdated Info"}
)

type ledgerNode struct {
	review Review
	next   *ledgerNode
}

// Ledger is an append-at-head, immutable collection of reviews.
// The zero value is an empty ledger.
type Ledger struct {
	head *ledgerNode
	n    int
}

// Len returns the number of reviews.
func (l Ledger) Len() int {
	return l.n
}

// Reviews returns every review, most recently added first.
func (l Ledger) Reviews() []Review {
	out := make([]Review, 0, l.n)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.review)
	}
	return out
}

// ForResource returns the reviews of one resource, most recent first.
func (l Ledger) ForResource(resourceID string) []Review {
	out := make([]Review, 0)
	for n := l.head; n != nil; n = n.next {
		if n.review.ResourceID == resourceID {
			out = append(out, n.review)
		}
	}
	return out
}

// AddReview attributes in to actor and prepends it to l. A nil actor or
// one without a name is rejected with ErrUnauthenticated and l is returned
// unchanged; so is a rating outside [MinRating, MaxRating].
func AddReview(l Ledger, actor *Actor, in ReviewInput, now time.Time) (Ledger, Review, error) {
	if actor == nil || strings.TrimSpace(actor.Name) == "" {
		return l, Review{}, ErrUnauthenticated
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return l, Review{}, fmt.Errorf("%w: got %d, want %d-%d", ErrInvalidRating, in.Rating, MinRating, MaxRating)
	}

	role := strings.TrimSpace(actor.Role)
	if role == "" {
		role = DefaultRole
	}

	r := Review{
		ID:            uuid.NewString(),
		ResourceID:    in.ResourceID,
		Author:        strings.TrimSpace(actor.Name),
		AuthorRole:    role,
		AuthorPicture: actor.Picture,
		Rating:        in.Rating,
		Tags:          dedupeTags(in.Tags),
		Comment:       strings.TrimSpace(in.Comment),
		Date:          now.Format(time.DateOnly),
		Verified:      true,
	}

	return Ledger{head: &ledgerNode{review: r, next: l.head}, n: l.n + 1}, r, nil
}

// Add is AddReview with l as the receiver.
func (l Ledger) Add(actor *Actor, in ReviewInput, now time.Time) (Ledger, Review, error) {
	return AddReview(l, actor, in, now)
}

// Score is the mean rating of a resource's reviews, or NeutralScore when
// it has none.
func Score(resourceID string, l Ledger) float64 {
	sum, count := 0, 0
	for n := l.head; n != nil; n = n.next {
		if n.review.ResourceID == resourceID {
			sum += n.review.Rating
			count++
		}
	}
	if count == 0 {
		return NeutralScore
	}
	return float64(sum) / float64(count)
}

// Scores computes Score for every id in one pass over the ledger.
func Scores(ids []string, l Ledger) map[string]float64 {
	type acc struct{ sum, count int }
	totals := make(map[string]*acc, len(ids))
	for _, id := range ids {
		totals[id] = &acc{}
	}
	for n := l.head; n != nil; n = n.next {
		if a, ok := totals[n.review.ResourceID]; ok {
			a.sum += n.review.Rating
			a.count++
		}
	}

	out := make(map[string]float64, len(ids))
	for id, a := range totals {
		if a.count == 0 {
			out[id] = NeutralScore
			continue
		}
		out[id] = float64(a.sum) / float64(a.count)
	}
	return out
}

// dedupeTags trims tags and drops empties and repeats, keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
