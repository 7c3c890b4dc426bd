package core

import "math"

// BoundsPadding is added around the extreme coordinates so edge pins are
// not clipped.
const BoundsPadding = 0.05

// Bounds is the map box enclosing a result set.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// Position is a projected point as percentages of the map box, measured
// from the top-left corner.
type Position struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Pin is a resource placed on the map.
type Pin struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Position Position `json:"position"`
}

// ComputeBounds returns the padded bounding box of the resources, or nil
// when there are none.
func ComputeBounds(resources []Resource) *Bounds {
	if len(resources) == 0 {
		return nil
	}
	b := Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLng: math.Inf(1), MaxLng: math.Inf(-1),
	}
	for _, r := range resources {
		b.MinLat = math.Min(b.MinLat, r.Location.Lat)
		b.MaxLat = math.Max(b.MaxLat, r.Location.Lat)
		b.MinLng = math.Min(b.MinLng, r.Location.Lng)
		b.MaxLng = math.Max(b.MaxLng, r.Location.Lng)
	}
	b.MinLat -= BoundsPadding
	b.MaxLat += BoundsPadding
	b.MinLng -= BoundsPadding
	b.MaxLng += BoundsPadding
	return &b
}

// LatRange is the box height in degrees, or 1 for a degenerate box.
func (b Bounds) LatRange() float64 {
	return nonZero(b.MaxLat - b.MinLat)
}

// LngRange is the box width in degrees, or 1 for a degenerate box.
func (b Bounds) LngRange() float64 {
	return nonZero(b.MaxLng - b.MinLng)
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Project maps p linearly into the box. Top is inverted because the top of
// the screen is the northern edge.
func Project(p Point, b Bounds) Position {
	return Position{
		Top:  (b.MaxLat - p.Lat) / b.LatRange() * 100,
		Left: (p.Lng - b.MinLng) / b.LngRange() * 100,
	}
}

// Pins projects every resource into b. A nil box yields no pins.
func Pins(resources []Resource, b *Bounds) []Pin {
	if b == nil {
		return []Pin{}
	}
	pins := make([]Pin, len(resources))
	for i, r := range resources {
		pins[i] = Pin{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
			Position: Project(r.Location.Point(), *b),
		}
	}
	return pins
}
