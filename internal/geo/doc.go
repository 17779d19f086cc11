// Package geo resolves coordinates and free-text Korean addresses to one
// of the 17 top-level Korean administrative regions.
//
// # Gazetteer
//
// The gazetteer is a fixed table of roughly 130 named places. The eight
// metropolitan/special cities (서울, 부산, 대구, 인천, 광주, 대전, 울산, 세종)
// appear exactly once each; the nine provinces contribute one
// province-level representative point (used for province-wide weather
// lookups) plus their constituent cities and counties. Coordinates are
// WGS-84 decimal degrees. The table is compiled in and never mutated, so
// every function in this package is safe for concurrent use without
// synchronization.
//
// # Nearest-place resolution
//
// Resolve scans the whole gazetteer computing the haversine great-circle
// distance (R = 6371 km) and returns the closest place. At ~130 entries a
// linear scan is the design, not an oversight; a spatial index would buy
// nothing at this scale. Equidistant places tie-break in declaration
// order, which is deterministic but not geographically meaningful.
//
// # Region classification
//
// Classify matches a free-text address against a per-region ordered
// keyword list by substring containment. Keyword lists are curated so
// that place names recurring across regions (고성군 exists in both 강원
// and 경남) only ever match through their fully-qualified administrative
// form. A bare province name in the address (e.g. "경기도") is a
// sufficient match: many event addresses carry only the province. The
// keyword tables are checked for cross-region collisions at package
// initialization and the process refuses to start on a violation.
package geo
