package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTables(t *testing.T) {
	require.NoError(t, validateTables())
}

func TestGazetteer_RegionCoverage(t *testing.T) {
	counts := map[Region]int{}
	for _, p := range Gazetteer() {
		counts[p.Region]++
	}

	for _, r := range Regions() {
		assert.Positive(t, counts[r], "region %s has no places", r)
	}
	for r := range metropolitanRegions {
		assert.Equal(t, 1, counts[r], "metropolitan region %s", r)
	}
	// Provinces have a representative point plus their cities/counties.
	assert.Greater(t, counts[Gyeonggi], 10)
	assert.Greater(t, counts[Gangwon], 10)
}

func TestGazetteer_UniqueCoordinates(t *testing.T) {
	// Duplicate coordinates would make nearest-place self-matches depend
	// on declaration order.
	seen := map[Coordinate]string{}
	for _, p := range Gazetteer() {
		c := Coordinate{Lat: p.Lat, Lon: p.Lon}
		prev, dup := seen[c]
		require.False(t, dup, "%s and %s share coordinate %v", prev, p.Name, c)
		seen[c] = p.Name
	}
}

func TestGazetteer_CoordinatesInsideKorea(t *testing.T) {
	for _, p := range Gazetteer() {
		assert.InDelta(t, 36, p.Lat, 3.5, "%s latitude", p.Name)
		assert.InDelta(t, 128, p.Lon, 4.0, "%s longitude", p.Name)
	}
}

func TestGazetteer_ReturnsCopy(t *testing.T) {
	g := Gazetteer()
	g[0].Name = "mutated"
	assert.Equal(t, "서울특별시", Gazetteer()[0].Name)
}
