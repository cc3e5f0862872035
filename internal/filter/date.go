package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go-jobscout/internal/models"
)

const day = 24 * time.Hour

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	relativeRegex = regexp.MustCompile(`(?i)\b(\d+)\s*(minute|min|hour|hr|day|week|month|year)s?\b`)

	unitDurations = map[string]time.Duration{
		"minute": time.Minute,
		"min":    time.Minute,
		"hour":   time.Hour,
		"hr":     time.Hour,
		"day":    day,
		"week":   7 * day,
		"month":  30 * day,
		"year":   365 * day,
	}

	//longest first so "a minute" is never read as "a min"
	articleUnits = []string{"minute", "month", "hour", "week", "year", "day", "min", "hr"}

	windows = map[models.DatePostedFilter]time.Duration{
		models.DatePostedPast24Hours: day,
		models.DatePostedPastWeek:    7 * day,
		models.DatePostedPastMonth:   30 * day,
	}
)

// PostedAge estimates how long ago a listing was posted from its free-text
// label ("3 days ago", "Just now", "2026-01-27"). ok is false when the label
// cannot be read.
func PostedAge(label string, now time.Time) (age time.Duration, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(label))
	switch {
	case lower == "":
		return 0, false
	case strings.Contains(lower, "just now"), strings.Contains(lower, "today"), strings.Contains(lower, "recently"):
		return 0, true
	case strings.Contains(lower, "yesterday"):
		return day, true
	}

	//ISO format "2026-01-27" or 2026-01-27T...
	if isoDateRegex.MatchString(lower) {
		posted, err := time.Parse("2006-01-02", lower[:10])
		if err == nil {
			return now.Sub(posted), true
		}
	}

	if match := relativeRegex.FindStringSubmatch(lower); match != nil {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, false
		}
		return time.Duration(n) * unitDurations[match[2]], true
	}

	//"a day ago", "an hour ago"
	for _, unit := range articleUnits {
		if strings.Contains(lower, "a "+unit) || strings.Contains(lower, "an "+unit) {
			return unitDurations[unit], true
		}
	}
	return 0, false
}

// PostedWithin reports whether a posted label falls inside the requested
// recency window. Unreadable labels and the "anytime" window always pass.
func PostedWithin(label string, window models.DatePostedFilter, now time.Time) bool {
	limit, ok := windows[window]
	if !ok {
		return true
	}
	age, ok := PostedAge(label, now)
	if !ok {
		return true
	}
	return age <= limit
}
