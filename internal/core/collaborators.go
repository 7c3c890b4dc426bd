package core

import "context"

// AuthProvider reports who is signed in for a request. ok is false for
// anonymous callers.
type AuthProvider interface {
	Actor(ctx context.Context) (*Actor, bool)
}

// DraftingService writes outreach text about a resource.
type DraftingService interface {
	Draft(ctx context.Context, r Resource, instructions string) (string, error)
}

// GroundingSearchService answers a question with live web sources.
type GroundingSearchService interface {
	Search(ctx context.Context, query string) (GroundedAnswer, error)
}

// Source is a web page an answer was grounded on.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundedAnswer is the text of a search answer plus its sources.
type GroundedAnswer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}
