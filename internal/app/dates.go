package app

import (
	"strings"
	"time"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "Mon Jan 02 2006"

	minLogDate = "1000-01-01"
	maxLogDate = "2999-12-31"
)

var acceptedDateLayouts = []string{
	isoDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	displayDateLayout,
}

// NormalizeDate converts a submitted date into the stored YYYY-MM-DD form.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDateLayout), true
		}
	}
	return "", false
}

// DisplayDate renders a stored ISO date as "Sun Jan 05 2020". Values that
// are not ISO dates are returned unchanged.
func DisplayDate(iso string) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}
