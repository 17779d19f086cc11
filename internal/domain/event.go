package domain

import "github.com/galraemalrae/weathertravel/internal/geo"

// EventRecord is a festival/event listing from the open-data provider.
// Dates are the provider's YYYYMMDD strings; Address is the free text the
// region classifier consumes.
type EventRecord struct {
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ContentID   string   `json:"contentId,omitempty"`
	Tel         string   `json:"tel,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Category    string   `json:"category,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	Sponsor     string   `json:"sponsor,omitempty"`
	Fee         string   `json:"fee,omitempty"`
	Parking     string   `json:"parking,omitempty"`
	Images      []string `json:"images,omitempty"`

	// From the provider's repeat-info endpoint.
	OperatingHours string `json:"operatingHours,omitempty"`
	ClosedDays     string `json:"closedDays,omitempty"`
}

// RegionMatchResult pairs an event with the region its address
// classified into. Region is empty when no region matched.
type RegionMatchResult struct {
	Event  EventRecord `json:"event"`
	Region geo.Region  `json:"region,omitempty"`
}

// MatchRegion classifies a single event's address against the target
// region.
func MatchRegion(event EventRecord, target geo.Region) RegionMatchResult {
	res := RegionMatchResult{Event: event}
	if geo.Classify(event.Address, target) {
		res.Region = target
	}
	return res
}

// FilterByRegion returns the events whose address classifies into the
// target region, preserving input order. An empty result is a valid
// terminal state, not an error.
func FilterByRegion(events []EventRecord, target geo.Region) []EventRecord {
	out := make([]EventRecord, 0, len(events))
	for _, ev := range events {
		if geo.Classify(ev.Address, target) {
			out = append(out, ev)
		}
	}
	return out
}
