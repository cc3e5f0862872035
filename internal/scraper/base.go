// Package scraper turns a search query into a ScrapeResult: from the cache,
// from a live browser session, or from the synthetic fallback.
package scraper

import (
	"context"

	"go-jobscout/internal/models"
)

// Driver is a browser session capability: load url and return the listing
// cards found there. Implementations must stop work and release their
// resources when ctx is done.
type Driver interface {
	Fetch(ctx context.Context, url string) ([]models.RawRecord, error)
}

// Alerter is told about degraded results, so operators hear when the target
// site breaks or changes its markup.
type Alerter interface {
	NotifyDegraded(q models.Query, kind FailureKind, warning string) error
}
