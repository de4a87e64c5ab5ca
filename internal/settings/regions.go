package settings

import (
	"errors"
	"strings"
)

var ErrUnsupportedRegion = errors.New("unsupported region")

type Region struct {
	Label string
	Zone  string
}

// Etc/GMT zones have inverted signs: UTC+5 is Etc/GMT-5.
var regions = []Region{
	{Label: "utc-12", Zone: "Etc/GMT+12"},
	{Label: "utc-11", Zone: "Etc/GMT+11"},
	{Label: "utc-10", Zone: "Etc/GMT+10"},
	{Label: "utc-9", Zone: "Etc/GMT+9"},
	{Label: "utc-8", Zone: "Etc/GMT+8"},
	{Label: "utc-7", Zone: "Etc/GMT+7"},
	{Label: "utc-6", Zone: "Etc/GMT+6"},
	{Label: "utc-5", Zone: "Etc/GMT+5"},
	{Label: "utc-4", Zone: "Etc/GMT+4"},
	{Label: "utc-3", Zone: "Etc/GMT+3"},
	{Label: "utc-2", Zone: "Etc/GMT+2"},
	{Label: "utc-1", Zone: "Etc/GMT+1"},
	{Label: "utc+0", Zone: "Etc/GMT"},
	{Label: "utc+1", Zone: "Etc/GMT-1"},
	{Label: "utc+2", Zone: "Etc/GMT-2"},
	{Label: "utc+3", Zone: "Etc/GMT-3"},
	{Label: "utc+4", Zone: "Etc/GMT-4"},
	{Label: "utc+5", Zone: "Etc/GMT-5"},
	{Label: "utc+6", Zone: "Etc/GMT-6"},
	{Label: "utc+7", Zone: "Etc/GMT-7"},
	{Label: "utc+8", Zone: "Etc/GMT-8"},
	{Label: "utc+9", Zone: "Etc/GMT-9"},
	{Label: "utc+10", Zone: "Etc/GMT-10"},
	{Label: "utc+11", Zone: "Etc/GMT-11"},
	{Label: "utc+12", Zone: "Etc/GMT-12"},
	{Label: "utc+13", Zone: "Etc/GMT-13"},
	{Label: "utc+14", Zone: "Etc/GMT-14"},
}

// LookupRegion matches input against the region labels ignoring case and surrounding spaces.
func LookupRegion(input string) (Region, bool) {
	label := strings.ToLower(strings.TrimSpace(input))
	for _, r := range regions {
		if r.Label == label {
			return r, true
		}
	}
	return Region{}, false
}

// Regions returns the supported labels ordered from utc-12 to utc+14.
func Regions() []string {
	res := make([]string, 0, len(regions))
	for _, r := range regions {
		res = append(res, r.Label)
	}
	return res
}
