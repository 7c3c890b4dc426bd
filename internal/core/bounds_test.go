package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(id string, lat, lng float64) Resource {
	return Resource{ID: id, Name: id, Category: FoodSecurity, Location: Location{Lat: lat, Lng: lng}}
}

func TestComputeBounds_Empty(t *testing.T) {
	assert.Nil(t, ComputeBounds(nil))
	assert.Nil(t, ComputeBounds([]Resource{}))
}

func TestComputeBounds_Padded(t *testing.T) {
	b := ComputeBounds([]Resource{at("a", 42.0, -71.5), at("b", 42.4, -71.0)})

	require.NotNil(t, b)
	assert.InDelta(t, 41.95, b.MinLat, 1e-9)
	assert.InDelta(t, 42.45, b.MaxLat, 1e-9)
	assert.InDelta(t, -71.55, b.MinLng, 1e-9)
	assert.InDelta(t, -70.95, b.MaxLng, 1e-9)
}

func TestProject_SinglePointIsFinite(t *testing.T) {
	r := at("a", 42.3, -71.8)
	b := ComputeBounds([]Resource{r})
	require.NotNil(t, b)

	pos := Project(r.Location.Point(), *b)

	assert.False(t, math.IsNaN(pos.Top) || math.IsInf(pos.Top, 0))
	assert.False(t, math.IsNaN(pos.Left) || math.IsInf(pos.Left, 0))
	assert.InDelta(t, 50, pos.Top, 1e-6)
	assert.InDelta(t, 50, pos.Left, 1e-6)
}

func TestProject_Corners(t *testing.T) {
	b := Bounds{MinLat: 42, MaxLat: 43, MinLng: -72, MaxLng: -71}

	nw := Project(Point{Lat: 43, Lng: -72}, b)
	se := Project(Point{Lat: 42, Lng: -71}, b)

	assert.InDelta(t, 0, nw.Top, 1e-9)
	assert.InDelta(t, 0, nw.Left, 1e-9)
	assert.InDelta(t, 100, se.Top, 1e-9)
	assert.InDelta(t, 100, se.Left, 1e-9)
}

func TestProject_DegenerateBox(t *testing.T) {
	b := Bounds{MinLat: 42, MaxLat: 42, MinLng: -71, MaxLng: -71}

	assert.Equal(t, 1.0, b.LatRange())
	assert.Equal(t, 1.0, b.LngRange())

	pos := Project(Point{Lat: 42, Lng: -71}, b)
	assert.Equal(t, Position{Top: 0, Left: 0}, pos)
}

func TestPins(t *testing.T) {
	rs := []Resource{at("a", 42.0, -72.0), at("b", 43.0, -71.0)}

	assert.Empty(t, Pins(rs, nil))

	b := ComputeBounds(rs)
	pins := Pins(rs, b)
	require.Len(t, pins, 2)
	assert.Equal(t, "a", pins[0].ID)
	assert.Greater(t, pins[0].Position.Top, pins[1].Position.Top, "southern pin sits lower")
	assert.Less(t, pins[0].Position.Left, pins[1].Position.Left, "western pin sits further left")
}
