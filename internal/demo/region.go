package demo

import (
	"fmt"
	"strings"
)

// GlobalRegionKey seeds demo content for users without any known location.
const GlobalRegionKey = "global"

// Location is whatever the client knows about where the user is.
type Location struct {
	State  string   `json:"state,omitempty"`
	County string   `json:"county,omitempty"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

// BuildCountyKey returns "<state>|<county>", lower-cased with runs of
// whitespace collapsed.
func BuildCountyKey(state, county string) string {
	return normalizeRegionPart(state) + "|" + normalizeRegionPart(county)
}

// BuildGeoKey buckets coordinates into ~1km cells.
func BuildGeoKey(lat, lng float64) string {
	return fmt.Sprintf("geo:%.2f,%.2f", lat, lng)
}

// RegionKeyFor prefers the county key, then the coordinate cell, then the
// global key.
func RegionKeyFor(loc Location) string {
	state, county := normalizeRegionPart(loc.State), normalizeRegionPart(loc.County)
	if state != "" && county != "" {
		return BuildCountyKey(state, county)
	}
	if loc.Lat != nil && loc.Lng != nil {
		return BuildGeoKey(*loc.Lat, *loc.Lng)
	}
	return GlobalRegionKey
}

func normalizeRegionPart(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
