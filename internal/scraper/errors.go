package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobscout/internal/models"
)

// ErrInvalidQuery is the only error Fetch returns.
var ErrInvalidQuery = models.ErrInvalidQuery

var (
	// ErrFetchTimeout means the browser step outlived its deadline.
	ErrFetchTimeout = errors.New("fetch timeout")
	// ErrNavigation means the session could not load the search page.
	ErrNavigation = errors.New("navigation failure")
	// ErrFetchFailure covers every other session error.
	ErrFetchFailure = errors.New("fetch failure")
	// ErrEmptyExtraction means the page loaded but held no listings.
	ErrEmptyExtraction = errors.New("empty extraction")
)

// FailureKind classifies a failed browser step.
type FailureKind string

const (
	FailureTimeout    FailureKind = "timeout"
	FailureNavigation FailureKind = "navigation"
	FailureOther      FailureKind = "other"
)

const noResultsWarning = "No jobs found matching your criteria. Try broader keywords or fewer filters."

// Classify maps a session error to a FailureKind. Typed errors are checked
// first; drivers that only return text are classified by their message.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureOther
	case errors.Is(err, ErrFetchTimeout), errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, ErrNavigation):
		return FailureNavigation
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return FailureTimeout
	case strings.Contains(msg, "net::err_"), strings.Contains(msg, "navigat"), strings.Contains(msg, "no such host"):
		return FailureNavigation
	default:
		return FailureOther
	}
}

// Warning is the caller-facing explanation for a fallback result.
func (k FailureKind) Warning(deadline time.Duration) string {
	switch k {
	case FailureTimeout:
		return fmt.Sprintf("The job site did not respond in time (timeout after %s). Showing sample listings instead.", deadline)
	case FailureNavigation:
		return "Could not load the job site (navigation failure). Showing sample listings instead."
	default:
		return "Something went wrong while fetching live listings (unexpected error). Showing sample listings instead."
	}
}
