package probe

import (
	_ "embed"
)

var (
	//go:embed scripts/front_app.applescript
	frontAppScript string

	//go:embed scripts/chrome.applescript
	chromeScript string

	//go:embed scripts/safari.applescript
	safariScript string

	//go:embed scripts/preview.applescript
	previewScript string

	//go:embed scripts/finder.applescript
	finderScript string
)

// Defaults returns the fixed probes in the order they are run. Every call
// returns a new slice.
func Defaults() []Descriptor {
	return []Descriptor{
		{Label: "Get Front App", Script: frontAppScript},
		{Label: "Chrome Logic", Script: chromeScript},
		{Label: "Safari Logic", Script: safariScript},
		{Label: "Preview Logic", Script: previewScript},
		{Label: "Finder Logic", Script: finderScript},
	}
}
