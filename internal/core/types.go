package core

import "slices"

// Status is the operating state of a resource.
type Status string

const (
	StatusActive   Status = "active"
	StatusSeasonal Status = "seasonal"
	StatusClosed   Status = "closed"
)

// VerificationStatus describes how far a resource has been vetted.
type VerificationStatus string

const (
	Verified   VerificationStatus = "verified"
	Pending    VerificationStatus = "pending"
	Unverified VerificationStatus = "unverified"
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Location is where a resource is delivered. Lat/Lng are approximate
// placements for the map, not geocoded addresses.
type Location struct {
	Address string  `json:"address" yaml:"address"`
	City    string  `json:"city" yaml:"city"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
}

// Point returns the location's coordinate.
func (l Location) Point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}

// Contact holds optional contact channels. A nil field means the source
// row had no value for it.
type Contact struct {
	Phone   *string `json:"phone" yaml:"phone"`
	Email   *string `json:"email" yaml:"email"`
	Website *string `json:"website" yaml:"website"`
}

// TrustMetrics is the verification metadata attached to a resource.
type TrustMetrics struct {
	VerificationStatus  VerificationStatus `json:"verificationStatus" yaml:"verificationStatus"`
	VerificationSources []string           `json:"verificationSources" yaml:"verificationSources"`
	LastVerified        string             `json:"lastVerified" yaml:"lastVerified"`
	VerificationScore   int                `json:"verificationScore" yaml:"verificationScore"` // 0-100
	ReportCount         int                `json:"reportCount" yaml:"reportCount"`
}

// Resource is a community-service entity. Values handed out by the Store
// are copies; mutating one never affects the store.
type Resource struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Category    Category     `json:"category" yaml:"category"`
	Status      Status       `json:"status" yaml:"status"`
	Location    Location     `json:"location" yaml:"location"`
	Contact     Contact      `json:"contact" yaml:"contact"`
	Services    []string     `json:"services" yaml:"services"`
	Eligibility []string     `json:"eligibility" yaml:"eligibility"`
	Hours       string       `json:"hours" yaml:"hours"`
	Trust       TrustMetrics `json:"trust" yaml:"trust"`
}

// clone returns a deep copy so slices and pointers are not shared with the
// store. Empty lists stay non-nil and encode as [].
func (r Resource) clone() Resource {
	r.Services = slices.Clone(r.Services)
	r.Eligibility = slices.Clone(r.Eligibility)
	r.Trust.VerificationSources = slices.Clone(r.Trust.VerificationSources)
	r.Contact.Phone = copyString(r.Contact.Phone)
	r.Contact.Email = copyString(r.Contact.Email)
	r.Contact.Website = copyString(r.Contact.Website)
	return r
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Actor is the signed-in person a review or saved list is attributed to.
type Actor struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

// key identifies the actor's session state (saved list).
func (a *Actor) key() string {
	if a.Email != "" {
		return a.Email
	}
	return a.Name
}

// Review is a single rating left by an actor. Reviews are never edited.
type Review struct {
	ID            string   `json:"id"`
	ResourceID    string   `json:"resourceId"`
	Author        string   `json:"author"`
	AuthorRole    string   `json:"authorRole"`
	AuthorPicture string   `json:"authorPicture,omitempty"`
	Rating        int      `json:"rating"` // 1-10
	Tags          []string `json:"tags"`
	Comment       string   `json:"comment"`
	Date          string   `json:"date"`
	Verified      bool     `json:"verified"`
}

// ReviewInput is the caller-supplied part of a review.
type ReviewInput struct {
	ResourceID string   `json:"resourceId"`
	Rating     int      `json:"rating"`
	Tags       []string `json:"tags"`
	Comment    string   `json:"comment"`
}

// QueryState is the set of filters a caller applies to the directory.
// The zero value for Category and City means the same as "all".
type QueryState struct {
	SearchText   string   `json:"searchText"`
	Category     Category `json:"category"`
	City         string   `json:"city"`
	VerifiedOnly bool     `json:"verifiedOnly"`
}

// AllQuery matches every resource.
var AllQuery = QueryState{Category: CategoryAll, City: CityAll}
