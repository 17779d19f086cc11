package geo

// hierarchy maps a bare city/county name to its fully qualified display
// form, e.g. "구리시" → "경기도 구리시". Built at init from the gazetteer.
var hierarchy = map[string]string{}

func buildHierarchy() {
	ambiguous := map[string]bool{}
	for _, p := range gazetteer {
		if p.Name == regionNames[p.Region] {
			continue // region-level entries pass through unchanged
		}
		if _, seen := hierarchy[p.Name]; seen {
			// Recurring names (고성군) cannot be qualified without more
			// context; leave them to the pass-through fallback.
			ambiguous[p.Name] = true
			continue
		}
		hierarchy[p.Name] = regionNames[p.Region] + " " + p.Name
	}
	for name := range ambiguous {
		delete(hierarchy, name)
	}
}

// HierarchicalName returns the fully qualified display form of a bare
// city/county name ("수원시" → "경기도 수원시"). Metropolitan/special-city
// names and anything without a mapping come back unchanged; the function
// is total and never fails.
func HierarchicalName(placeName string) string {
	if qualified, ok := hierarchy[placeName]; ok {
		return qualified
	}
	return placeName
}
