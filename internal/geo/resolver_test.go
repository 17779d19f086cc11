package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SeoulCityHall(t *testing.T) {
	loc, err := Resolve(37.5665, 126.9780)
	require.NoError(t, err)

	assert.Equal(t, Seoul, loc.Place.Region)
	assert.Equal(t, "서울특별시", loc.Place.Name)
	assert.InDelta(t, 0, loc.DistanceKm, 1e-9)
}

func TestResolve_Suwon(t *testing.T) {
	loc, err := Resolve(37.2636, 127.0286)
	require.NoError(t, err)

	assert.Equal(t, Gyeonggi, loc.Place.Region)
	assert.Equal(t, "수원시", loc.Place.Name)
}

func TestResolve_SelfMatchForEveryPlace(t *testing.T) {
	for _, p := range Gazetteer() {
		loc, err := Resolve(p.Lat, p.Lon)
		require.NoError(t, err)
		assert.Equal(t, p, loc.Place, "place %s should resolve to itself", p.Name)
		assert.InDelta(t, 0, loc.DistanceKm, 1e-9)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve(36.0, 128.0)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Resolve(36.0, 128.0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_InvalidCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too high", 91, 0},
		{"latitude too low", -90.0001, 0},
		{"longitude too high", 37.5, 200},
		{"longitude too low", 37.5, -180.5},
		{"NaN latitude", math.NaN(), 127},
		{"NaN longitude", 37.5, math.NaN()},
		{"Inf latitude", math.Inf(1), 127},
		{"Inf longitude", 37.5, math.Inf(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.lat, tc.lon)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestResolve_BoundaryValuesAccepted(t *testing.T) {
	_, err := Resolve(90, 180)
	assert.NoError(t, err)

	_, err = Resolve(-90, -180)
	assert.NoError(t, err)
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := Coordinate{Lat: 37.5665, Lon: 126.9780}
	b := Coordinate{Lat: 35.1796, Lon: 129.0756}

	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	a := Coordinate{Lat: 37.5665, Lon: 126.9780}
	assert.Equal(t, 0.0, HaversineKm(a, a))
}

func TestHaversineKm_SeoulBusan(t *testing.T) {
	seoul := Coordinate{Lat: 37.5665, Lon: 126.9780}
	busan := Coordinate{Lat: 35.1796, Lon: 129.0756}

	// Straight-line Seoul–Busan is roughly 325 km.
	d := HaversineKm(seoul, busan)
	assert.InDelta(t, 325, d, 10)
}
