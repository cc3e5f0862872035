package filter

import (
	"testing"
	"time"

	"go-jobscout/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPostedAge(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		label string
		age   time.Duration
		ok    bool
	}{
		{label: "Just now", age: 0, ok: true},
		{label: "Recently posted", age: 0, ok: true},
		{label: "Yesterday", age: day, ok: true},
		{label: "5 hours ago", age: 5 * time.Hour, ok: true},
		{label: "3 days ago", age: 3 * day, ok: true},
		{label: "2 weeks ago", age: 14 * day, ok: true},
		{label: "1 month ago", age: 30 * day, ok: true},
		{label: "an hour ago", age: time.Hour, ok: true},
		{label: "a minute ago", age: time.Minute, ok: true},
		{label: "a day ago", age: day, ok: true},
		{label: "a week ago", age: 7 * day, ok: true},
		{label: "a month ago", age: 30 * day, ok: true},
		{label: "a year ago", age: 365 * day, ok: true},
		{label: "2026-03-08", age: 2*day + 12*time.Hour, ok: true},
		{label: "whenever", ok: false},
		{label: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			age, ok := PostedAge(tt.label, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.age, age)
			}
		})
	}
}

func TestPostedWithin(t *testing.T) {
	now := time.Now()

	assert.True(t, PostedWithin("3 weeks ago", models.DatePostedAnytime, now))
	assert.True(t, PostedWithin("5 hours ago", models.DatePostedPast24Hours, now))
	assert.False(t, PostedWithin("2 days ago", models.DatePostedPast24Hours, now))
	assert.True(t, PostedWithin("1 week ago", models.DatePostedPastWeek, now))
	assert.False(t, PostedWithin("2 weeks ago", models.DatePostedPastWeek, now))
	assert.True(t, PostedWithin("1 month ago", models.DatePostedPastMonth, now))
	assert.False(t, PostedWithin("2 months ago", models.DatePostedPastMonth, now))
	assert.True(t, PostedWithin("some day", models.DatePostedPast24Hours, now))
}
