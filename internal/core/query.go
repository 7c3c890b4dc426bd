package core

import "strings"

// CityAll is the query value that matches every city.
const CityAll = "all"

// Filter returns the store's resources that satisfy q, in store order.
func Filter(s *Store, q QueryState) []Resource {
	m := newMatcher(q)
	out := make([]Resource, 0)
	for _, r := range s.resources {
		if m.match(r) {
			out = append(out, r.clone())
		}
	}
	return out
}

// FilterResources applies the same predicate as Filter to an arbitrary
// list, keeping its order. Filtering an already filtered list with the
// same state returns it unchanged.
func FilterResources(list []Resource, q QueryState) []Resource {
	m := newMatcher(q)
	out := make([]Resource, 0, len(list))
	for _, r := range list {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single resource satisfies q.
func Matches(r Resource, q QueryState) bool {
	return newMatcher(q).match(r)
}

// matcher holds the pre-lowered search text so a filter pass lowercases
// the needle once.
type matcher struct {
	needle       string
	category     Category
	city         string
	verifiedOnly bool
}

func newMatcher(q QueryState) matcher {
	return matcher{
		needle:       strings.ToLower(q.SearchText),
		category:     q.Category,
		city:         q.City,
		verifiedOnly: q.VerifiedOnly,
	}
}

func (m matcher) match(r Resource) bool {
	return m.matchCategory(r) &&
		m.matchCity(r) &&
		m.matchVerified(r) &&
		m.matchSearch(r)
}

func (m matcher) matchSearch(r Resource) bool {
	if m.needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), m.needle) {
		return true
	}
	for _, svc := range r.Services {
		if strings.Contains(strings.ToLower(svc), m.needle) {
			return true
		}
	}
	return false
}

func (m matcher) matchCategory(r Resource) bool {
	return m.category == "" || m.category == CategoryAll || r.Category == m.category
}

// matchCity compares case-sensitively; cities are trimmed at ingestion.
func (m matcher) matchCity(r Resource) bool {
	return m.city == "" || m.city == CityAll || r.Location.City == m.city
}

func (m matcher) matchVerified(r Resource) bool {
	return !m.verifiedOnly || r.Trust.VerificationScore >= VerifiedThreshold
}
