package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-jobscout/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		query    models.Query
		expected string
	}{
		{
			name:     "Keywords only",
			query:    models.Query{Keywords: "engineer", JobType: models.JobTypeAll, DatePosted: models.DatePostedAnytime},
			expected: testBaseURL + "?keywords=engineer",
		},
		{
			name:     "All filters",
			query:    models.Query{Keywords: "golang developer", Location: "Berlin", JobType: models.JobTypeRemote, DatePosted: models.DatePostedPastWeek},
			expected: testBaseURL + "?f_TPR=r604800&f_WT=2&keywords=golang+developer&location=Berlin",
		},
		{
			name:     "Internship past day",
			query:    models.Query{Keywords: "design", JobType: models.JobTypeInternship, DatePosted: models.DatePostedPast24Hours},
			expected: testBaseURL + "?f_JT=I&f_TPR=r86400&keywords=design",
		},
		{
			name:     "Unmapped filters are dropped",
			query:    models.Query{Keywords: "design", JobType: "freelance", DatePosted: "lastDecade"},
			expected: testBaseURL + "?keywords=design",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildSearchURL(testBaseURL, tt.query))
		})
	}
}

func TestBuildSearchURL_KeepsBaseParams(t *testing.T) {
	got := BuildSearchURL(testBaseURL+"?position=1", models.Query{Keywords: "qa"})
	assert.Equal(t, testBaseURL+"?keywords=qa&position=1", got)
}

func TestFingerprint(t *testing.T) {
	a := models.Query{Keywords: "Golang Developer", Location: "Hà Nội", JobType: "all", DatePosted: "anytime"}
	b := models.Query{Keywords: "golang developer", Location: "ha noi", JobType: "ALL", DatePosted: "anytime"}
	c := models.Query{Keywords: "golang developer", Location: "ha noi", JobType: "remote", DatePosted: "anytime"}

	assert.Equal(t, "golang developer|ha noi|all|anytime", Fingerprint(a))
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		expected FailureKind
	}{
		{err: ErrFetchTimeout, expected: FailureTimeout},
		{err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), expected: FailureTimeout},
		{err: errors.New("Timeout 30000ms exceeded"), expected: FailureTimeout},
		{err: fmt.Errorf("%w: boom", ErrNavigation), expected: FailureNavigation},
		{err: errors.New("page.goto: net::ERR_CONNECTION_REFUSED"), expected: FailureNavigation},
		{err: errors.New("dial tcp: lookup example.invalid: no such host"), expected: FailureNavigation},
		{err: errors.New("target closed"), expected: FailureOther},
		{err: nil, expected: FailureOther},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}
