package clock

import (
	"maps"
	"slices"
)

// DefaultZone is shown at startup.
const DefaultZone = "America/Los_Angeles"

// Table maps navigation labels to IANA zone identifiers.
type Table map[string]string

// DefaultTable returns the stock label to zone mapping.
func DefaultTable() Table {
	return Table{
		"Cupertino":     "America/Los_Angeles",
		"New York City": "America/New_York",
		"London":        "Europe/London",
		"Amsterdam":     "Europe/Amsterdam",
		"Tokyo":         "Asia/Tokyo",
		"Hong Kong":     "Asia/Hong_Kong",
		"Sydney":        "Australia/Sydney",
	}
}

// Lookup returns the zone for an exact label.
func (t Table) Lookup(label string) (string, bool) {
	zone, ok := t[label]
	return zone, ok
}

// Resolve prefers an explicit zone over the label lookup.
func (t Table) Resolve(label, zone string) (string, bool) {
	if zone != "" {
		return zone, true
	}
	return t.Lookup(label)
}

// Merge returns a copy of t with extra entries added or overriding.
func (t Table) Merge(extra map[string]string) Table {
	out := make(Table, len(t)+len(extra))
	maps.Copy(out, t)
	maps.Copy(out, extra)
	return out
}

// Labels returns the known labels in sorted order.
func (t Table) Labels() []string {
	return slices.Sorted(maps.Keys(t))
}
