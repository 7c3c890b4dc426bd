package core

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Placeholders for cells the source leaves empty.
const (
	AddressPlaceholder = "Varies / Statewide"
	DefaultHours       = "Call for hours / Varies"
)

// BuildOptions injects the non-deterministic inputs of Build.
// Zero values fall back to a clock-seeded source and time.Now.
type BuildOptions struct {
	Rand Rand
	Now  func() time.Time
}

// Store is the immutable, insertion-ordered resource collection.
// It is safe for concurrent readers.
type Store struct {
	resources []Resource
	byID      map[string]int
	cities    []string
}

// Build parses raw and assembles the store. It never fails: malformed rows
// are dropped and unknown values degrade to defaults. A row repeating an
// earlier ID is dropped so IDs stay unique.
func Build(raw string, opts BuildOptions) *Store {
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	geo := NewGeoResolver(opts.Rand)
	trust := NewTrustInitializer(opts.Rand, opts.Now)

	_, rows := ParseTable(strings.TrimPrefix(raw, utf8BOM))

	s := &Store{
		resources: make([]Resource, 0, len(rows)),
		byID:      make(map[string]int, len(rows)),
	}
	seenCity := make(map[string]bool)

	for _, row := range rows {
		if _, dup := s.byID[row.ID]; dup {
			continue
		}
		res := assemble(row, geo, trust)
		s.byID[res.ID] = len(s.resources)
		s.resources = append(s.resources, res)

		if !seenCity[res.Location.City] {
			seenCity[res.Location.City] = true
			s.cities = append(s.cities, res.Location.City)
		}
	}
	sort.Strings(s.cities)

	return s
}

const utf8BOM = "\uFEFF"

// BuildFromReader reads the whole table from r and builds the store.
// Spreadsheet exports often carry a byte order mark or stray Latin-1
// bytes; Build skips the mark and invalid sequences become U+FFFD.
// The only error is the reader's.
func BuildFromReader(r io.Reader, opts BuildOptions) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read resource table: %w", err)
	}
	return Build(strings.ToValidUTF8(string(data), "\uFFFD"), opts), nil
}

func assemble(row Row, geo *GeoResolver, trust *TrustInitializer) Resource {
	city := strings.TrimSpace(row.City)
	pt := geo.Resolve(city)

	address := row.Address
	if address == "" {
		address = AddressPlaceholder
	}

	return Resource{
		ID:          row.ID,
		Name:        strings.ReplaceAll(row.Name, "|", " "),
		Description: strings.ReplaceAll(row.Description, `"`, ""),
		Category:    NormalizeCategory(row.Category),
		Status:      normalizeStatus(row.Status),
		Location: Location{
			Address: address,
			City:    city,
			Lat:     pt.Lat,
			Lng:     pt.Lng,
		},
		Contact: Contact{
			Phone:   optional(row.Phone),
			Email:   nil,
			Website: optional(row.Website),
		},
		Services:    splitList(row.Services),
		Eligibility: splitList(row.Eligibility),
		Hours:       DefaultHours,
		Trust:       trust.Init(row.ID),
	}
}

func normalizeStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusSeasonal:
		return StatusSeasonal
	case StatusClosed:
		return StatusClosed
	default:
		return StatusActive
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Len returns the number of resources.
func (s *Store) Len() int {
	return len(s.resources)
}

// All returns every resource in insertion order.
func (s *Store) All() []Resource {
	out := make([]Resource, len(s.resources))
	for i, r := range s.resources {
		out[i] = r.clone()
	}
	return out
}

// Get looks up a resource by ID.
func (s *Store) Get(id string) (Resource, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Resource{}, false
	}
	return s.resources[i].clone(), true
}

// Has reports whether id is in the store.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Cities returns the distinct city names, sorted.
func (s *Store) Cities() []string {
	return append([]string(nil), s.cities...)
}

// position returns the insertion index of id, used to keep derived lists
// in store order.
func (s *Store) position(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}
