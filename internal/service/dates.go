package service

import (
	"time"

	errorvalues "github.com/lexacus/exercise-tracker/internal/error_values"
)

// dateLayout matches the human-readable calendar-date form exercises are
// stored and reported in, e.g. "Sun Jan 15 2023".
const (
	dateLayout    = "Mon Jan 02 2006"
	dateKeyLayout = "2006-01-02"
)

// Accepted input forms, tried in order. The normalized form itself is
// accepted so stored dates round-trip through the from/to parameters.
var inputLayouts = []string{
	dateKeyLayout,
	time.RFC3339,
	dateLayout,
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errorvalues.ErrInvalidDate
}

// resolveDate picks the exercise date: current date when raw is empty,
// otherwise the parsed input. Returns the normalized form and its
// sortable key.
func resolveDate(raw string) (date string, key string, err error) {
	t := time.Now()
	if raw != "" {
		t, err = parseDate(raw)
		if err != nil {
			return "", "", err
		}
	}
	return t.Format(dateLayout), t.Format(dateKeyLayout), nil
}

// dateKeyOf converts a from/to query value to a sortable key, empty when
// the value is absent or unparseable.
func dateKeyOf(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := parseDate(raw)
	if err != nil {
		return ""
	}
	return t.Format(dateKeyLayout)
}
