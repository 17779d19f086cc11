package geo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion reports a routing slug that matches none of the 17
// regions. Callers should present a not-found outcome.
var ErrUnknownRegion = errors.New("unknown region")

// regionKeywords maps each region to its ordered match keywords, most
// specific first. Place names that recur across regions (고성군 exists in
// both 강원 and 경남) appear only in fully-qualified form, so such
// addresses can never cross-match. Bare "광주" is deliberately absent:
// 광주시 also exists in 경기도, so 광주광역시 must be named in full.
// Legacy province names (강원도, 전라북도, 제주도) are kept because event
// addresses predating the 특별자치도 renames still use them.
var regionKeywords = map[Region][]string{
	Seoul:   {"서울특별시", "서울시", "서울"},
	Busan:   {"부산광역시", "부산시", "부산"},
	Daegu:   {"대구광역시", "대구시", "대구"},
	Incheon: {"인천광역시", "인천시", "인천"},
	Gwangju: {"광주광역시"},
	Daejeon: {"대전광역시", "대전시", "대전"},
	Ulsan:   {"울산광역시", "울산시", "울산"},
	Sejong:  {"세종특별자치시", "세종시", "세종"},

	Gyeonggi:  {"경기도"},
	Gangwon:   {"강원특별자치도 고성군", "강원도 고성군", "강원특별자치도", "강원도"},
	Chungbuk:  {"충청북도", "충북"},
	Chungnam:  {"충청남도", "충남"},
	Jeonbuk:   {"전북특별자치도", "전라북도", "전북"},
	Jeonnam:   {"전라남도", "전남"},
	Gyeongbuk: {"경상북도", "경북"},
	Gyeongnam: {"경상남도 고성군", "경상남도", "경남"},
	Jeju:      {"제주특별자치도", "제주도", "제주"},
}

// Classify reports whether a free-text address belongs to the target
// region. An address matches when it contains any of the region's
// keywords as a substring after whitespace trimming (Korean has no case
// to fold). Empty or unrecognizable addresses are a non-match, never an
// error.
func Classify(addressText string, region Region) bool {
	addr := strings.TrimSpace(addressText)
	if addr == "" {
		return false
	}
	for _, kw := range regionKeywords[region] {
		if strings.Contains(addr, kw) {
			return true
		}
	}
	return false
}

// ParseRegion validates a routing slug against the 17 known regions.
func ParseRegion(slug string) (Region, error) {
	r := Region(strings.TrimSpace(slug))
	if _, ok := regionNames[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, slug)
	}
	return r, nil
}

// IsValidRegion reports whether slug names one of the 17 regions.
func IsValidRegion(slug string) bool {
	_, err := ParseRegion(slug)
	return err == nil
}

// DisplayName returns the canonical Korean name for a region, or the
// empty string for an unknown one.
func DisplayName(region Region) string {
	return regionNames[region]
}

// RepresentativeCoordinate returns the curated point used for
// region-level weather lookups: the city itself for metropolitan
// regions, the province-level gazetteer entry for provinces.
func RepresentativeCoordinate(region Region) (Coordinate, error) {
	p, ok := representatives[region]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return Coordinate{Lat: p.Lat, Lon: p.Lon}, nil
}

// validateKeywords enforces the disambiguation invariant at startup:
// every region has keywords, no keyword is shared between regions, and
// no keyword of one region occurs inside another region's fully
// qualified place names. The last check is what rejects ambiguous short
// forms like a bare "고성", which would match both "강원특별자치도 고성군"
// and "경상남도 고성군".
func validateKeywords() error {
	owner := make(map[string]Region)
	for _, r := range allRegions {
		kws := regionKeywords[r]
		if len(kws) == 0 {
			return fmt.Errorf("region %q has no keywords", r)
		}
		for _, kw := range kws {
			if kw != strings.TrimSpace(kw) || kw == "" {
				return fmt.Errorf("region %q has malformed keyword %q", r, kw)
			}
			if prev, dup := owner[kw]; dup && prev != r {
				return fmt.Errorf("keyword %q claimed by both %q and %q", kw, prev, r)
			}
			owner[kw] = r
		}
	}

	for _, p := range gazetteer {
		qualified := regionNames[p.Region] + " " + p.Name
		for kw, r := range owner {
			if r == p.Region {
				continue
			}
			if strings.Contains(qualified, kw) {
				return fmt.Errorf("keyword %q of region %q collides with place %q in %q",
					kw, r, qualified, p.Region)
			}
		}
	}
	return nil
}
