package core

import "strings"

// DefaultPoint is where every city missing from the lookup table lands.
// Resources in different unknown cities therefore share one map position.
var DefaultPoint = Point{Lat: 42.3, Lng: -71.8}

// Jitter spans in degrees. Boston gets the wider span because most of the
// directory sits there.
const (
	JitterBoston = 0.03
	JitterCity   = 0.01
)

// Centroid is a base coordinate plus the jitter span applied on both axes.
type Centroid struct {
	Point
	Jitter float64
}

var boston = Centroid{Point{42.3550, -71.059}, JitterBoston}

// cityCentroids is keyed by lowercase city name.
var cityCentroids = map[string]Centroid{
	"boston":        boston,
	"roxbury":       boston,
	"dorchester":    boston,
	"hyde park":     boston,
	"mattapan":      boston,
	"jamaica plain": boston,
	"allston":       boston,
	"charlestown":   boston,
	"cambridge":     {Point{42.3736, -71.1097}, JitterCity},
	"somerville":    {Point{42.3876, -71.0995}, JitterCity},
	"chelsea":       {Point{42.3916, -71.0336}, JitterCity},
	"revere":        {Point{42.3916, -71.0336}, JitterCity},
	"worcester":     {Point{42.2626, -71.8023}, JitterCity},
	"springfield":   {Point{42.1015, -72.5898}, JitterCity},
	"lowell":        {Point{42.6416, -71.3168}, JitterCity},
	"malden":        {Point{42.4279, -71.0667}, JitterCity},
	"everett":       {Point{42.4087, -71.0694}, JitterCity},
	"quincy":        {Point{42.2529, -71.0023}, JitterCity},
	"needham":       {Point{42.3112, -71.2483}, JitterCity},
	"framingham":    {Point{42.2798, -71.4168}, JitterCity},
	"watertown":     {Point{42.3653, -71.1789}, JitterCity},
	"brockton":      {Point{42.0834, -71.0189}, JitterCity},
	"pittsfield":    {Point{42.4485, -73.2536}, JitterCity},
	"burlington":    {Point{42.5085, -71.1995}, JitterCity},
	"beverly":       {Point{42.5583, -70.8804}, JitterCity},
	"hyannis":       {Point{41.6554, -70.2789}, JitterCity},
	"braintree":     {Point{42.2078, -71.0078}, JitterCity},
	"fall river":    {Point{41.7001, -71.1666}, JitterCity},
	"amesbury":      {Point{42.8596, -70.9328}, JitterCity},
	"chelmsford":    {Point{42.5959, -71.3732}, JitterCity},
	"waltham":       {Point{42.3765, -71.2356}, JitterCity},
	"greenfield":    {Point{42.5856, -72.5862}, JitterCity},
	"holyoke":       {Point{42.2037, -72.5873}, JitterCity},
	"lawrence":      {Point{42.7070, -71.1578}, JitterCity},
	"lynn":          {Point{42.4668, -70.9497}, JitterCity},
	"wakefield":     {Point{42.5028, -71.0700}, JitterCity},
	"new bedford":   {Point{41.6360, -70.9348}, JitterCity},
	"leominster":    {Point{42.5298, -71.7617}, JitterCity},
	"plymouth":      {Point{41.9585, -70.6672}, JitterCity},
	"whitinsville":  {Point{42.1009, -71.6669}, JitterCity},
	"taunton":       {Point{41.9030, -71.0898}, JitterCity},
	"newton":        {Point{42.3369, -71.2014}, JitterCity},
	"salem":         {Point{42.5195, -70.8967}, JitterCity},
	"spencer":       {Point{42.2274, -72.0310}, JitterCity},
	"lexington":     {Point{42.4473, -71.2291}, JitterCity},
}

// LookupCentroid returns the table entry for a city, if any.
func LookupCentroid(city string) (Centroid, bool) {
	c, ok := cityCentroids[strings.ToLower(strings.TrimSpace(city))]
	return c, ok
}

// GeoResolver places cities on the map.
type GeoResolver struct {
	rnd Rand
}

// NewGeoResolver returns a resolver drawing jitter from rnd.
func NewGeoResolver(rnd Rand) *GeoResolver {
	return &GeoResolver{rnd: rnd}
}

// Resolve returns the city's base coordinate shifted by [0, jitter) on each
// axis, or DefaultPoint when the city is unknown.
func (g *GeoResolver) Resolve(city string) Point {
	c, ok := LookupCentroid(city)
	if !ok {
		return DefaultPoint
	}
	return Point{
		Lat: c.Lat + g.rnd.Float64()*c.Jitter,
		Lng: c.Lng + g.rnd.Float64()*c.Jitter,
	}
}
