// Package geo provides the great-circle distance calculation used when
// assembling routes.
package geo

import (
	"math"

	"github.com/shopspring/decimal"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Point is a (latitude, longitude) pair in decimal degrees.
type Point struct {
	Lat  decimal.Decimal
	Long decimal.Decimal
}

// NewPoint builds a Point from decimal coordinates.
func NewPoint(lat, long decimal.Decimal) Point {
	return Point{Lat: lat, Long: long}
}

// Valid reports whether the point lies within latitude [-90, 90] and
// longitude [-180, 180].
func (p Point) Valid() bool {
	lat := p.Lat.InexactFloat64()
	long := p.Long.InexactFloat64()
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula. Coordinates are converted straight
// from decimal to float64; callers are responsible for range validation.
func Distance(a, b Point) float64 {
	lat1 := degToRad(a.Lat.InexactFloat64())
	long1 := degToRad(a.Long.InexactFloat64())
	lat2 := degToRad(b.Lat.InexactFloat64())
	long2 := degToRad(b.Long.InexactFloat64())

	dLat := lat2 - lat1
	dLong := long2 - long1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
