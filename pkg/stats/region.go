package stats

import (
	"strings"

	"github.com/biter777/countries"
)

// UnknownRegion is the region of countries no lookup knows about.
const UnknownRegion = "Unknown"

// RegionLookup maps a country name to the region it is colored by.
type RegionLookup interface {
	Region(country string) string
}

// StaticRegions is a RegionLookup over caller supplied data.
type StaticRegions map[string]string

func (m StaticRegions) Region(country string) string {
	if r, ok := m[country]; ok && r != "" {
		return r
	}
	return UnknownRegion
}

// CountryRegions looks countries up by name in the ISO 3166 country list
// and reports their UN geoscheme region ("Asia", "Europe", ...).
type CountryRegions struct{}

func (CountryRegions) Region(country string) string {
	name := strings.TrimSpace(country)
	if name == "" {
		return UnknownRegion
	}

	cc := countries.ByName(name)
	if cc == countries.Unknown {
		return UnknownRegion
	}

	region := cc.Region()
	if region == countries.RegionUnknown {
		return UnknownRegion
	}
	return region.String()
}
