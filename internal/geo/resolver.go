package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// ErrInvalidCoordinate reports a latitude/longitude outside the valid
// WGS-84 range (or a NaN/Inf value). Callers should treat it as a bad
// request, not retry.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const earthRadiusKm = 6371

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ResolvedLocation is the result of a nearest-place lookup.
type ResolvedLocation struct {
	Query      Coordinate  `json:"query"`
	Place      PlaceRecord `json:"place"`
	DistanceKm float64     `json:"distance_km"`
}

// Resolve returns the gazetteer place closest to the given coordinate by
// great-circle distance. Latitude must lie in [-90, 90] and longitude in
// [-180, 180]; anything else fails with ErrInvalidCoordinate. Equidistant
// places tie-break in gazetteer declaration order.
func Resolve(lat, lon float64) (ResolvedLocation, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return ResolvedLocation{}, err
	}

	query := Coordinate{Lat: lat, Lon: lon}
	best := gazetteer[0]
	bestDist := HaversineKm(query, Coordinate{Lat: best.Lat, Lon: best.Lon})

	for _, p := range gazetteer[1:] {
		if d := HaversineKm(query, Coordinate{Lat: p.Lat, Lon: p.Lon}); d < bestDist {
			best = p
			bestDist = d
		}
	}

	return ResolvedLocation{Query: query, Place: best, DistanceKm: bestDist}, nil
}

// HaversineKm computes the great-circle distance between two coordinates
// in kilometers on a sphere of radius 6371 km.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// validateCoordinate rejects NaN and Inf before handing the pair to s2,
// then relies on s2's range check for the [-90,90]/[-180,180] bounds.
func validateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, lat, lon)
	}
	if !s2.LatLngFromDegrees(lat, lon).IsValid() {
		return fmt.Errorf("%w: (%.4f, %.4f)", ErrInvalidCoordinate, lat, lon)
	}
	return nil
}
