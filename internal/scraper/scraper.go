package scraper

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go-jobscout/internal/cache"
	"go-jobscout/internal/extract"
	"go-jobscout/internal/fallback"
	"go-jobscout/internal/metrics"
	"go-jobscout/internal/models"

	"golang.org/x/sync/singleflight"
)

// Defaults for Options.
const (
	DefaultPageSize       = 25
	DefaultFallbackCount  = 10
	DefaultBrowserTimeout = 25 * time.Second
)

// Options configures an Orchestrator.
type Options struct {
	// BaseURL is the search page the query is encoded onto.
	BaseURL        string
	PageSize       int
	FallbackCount  int
	BrowserTimeout time.Duration
	// Coalesce lets concurrent misses for the same fingerprint share one
	// browser session. Off by default: each miss runs its own session.
	Coalesce bool
}

// Orchestrator coordinates cache, browser session, extraction and fallback.
type Orchestrator struct {
	driver    Driver
	cache     *cache.ResultCache
	extractor *extract.Extractor
	fallback  *fallback.Generator
	alerter   Alerter
	opts      Options

	group    singleflight.Group
	inflight sync.WaitGroup
}

// New wires an Orchestrator. The cache is owned by the caller so one instance
// can be shared with the sweeper.
func New(driver Driver, c *cache.ResultCache, ex *extract.Extractor, gen *fallback.Generator, opts Options) *Orchestrator {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.FallbackCount <= 0 {
		opts.FallbackCount = DefaultFallbackCount
	}
	if opts.FallbackCount > opts.PageSize {
		opts.FallbackCount = opts.PageSize
	}
	if opts.BrowserTimeout <= 0 {
		opts.BrowserTimeout = DefaultBrowserTimeout
	}
	return &Orchestrator{
		driver:    driver,
		cache:     c,
		extractor: ex,
		fallback:  gen,
		opts:      opts,
	}
}

// WithAlerter registers an Alerter that hears about degraded results.
func (o *Orchestrator) WithAlerter(a Alerter) *Orchestrator {
	o.alerter = a
	return o
}

// Fetch answers q. The only error it returns is ErrInvalidQuery; every other
// failure becomes a result carrying a Warning.
func (o *Orchestrator) Fetch(ctx context.Context, q models.Query) (models.ScrapeResult, error) {
	if err := q.Validate(); err != nil {
		return models.ScrapeResult{Jobs: []models.Job{}}, err
	}

	key := Fingerprint(q)
	if entry, ok := o.cache.Get(key); ok {
		log.Printf("📋 Cache hit for %q (%d jobs)", key, len(entry.Jobs))
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeCacheHit).Inc()
		return models.ScrapeResult{
			Jobs:        entry.Jobs,
			TotalCount:  entry.TotalCount,
			IsFromCache: true,
		}, nil
	}

	if !o.opts.Coalesce {
		return o.scrape(ctx, q, key), nil
	}

	v, _, shared := o.group.Do(key, func() (interface{}, error) {
		return o.scrape(ctx, q, key), nil
	})
	result := v.(models.ScrapeResult)
	if shared {
		result.Jobs = append([]models.Job(nil), result.Jobs...)
	}
	return result, nil
}

// Close waits for abandoned browser sessions and pending alerts to finish.
func (o *Orchestrator) Close() {
	o.inflight.Wait()
}

func (o *Orchestrator) scrape(ctx context.Context, q models.Query, key string) models.ScrapeResult {
	target := BuildSearchURL(o.opts.BaseURL, q)
	log.Printf("🔍 Searching: %s", target)

	records, err := o.runSession(ctx, target)
	if err != nil {
		return o.degrade(ctx, q, key, err)
	}

	if len(records) == 0 {
		log.Printf("ℹ️ %v for %q", ErrEmptyExtraction, key)
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		o.store(key, []models.Job{}, 0)
		return models.ScrapeResult{Jobs: []models.Job{}, Warning: noResultsWarning}
	}

	jobs := o.extractor.Extract(records)
	if len(jobs) > o.opts.PageSize {
		jobs = jobs[:o.opts.PageSize]
	}
	log.Printf("✅ Extracted %d jobs from %d cards for %q", len(jobs), len(records), key)
	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFresh).Inc()
	o.store(key, jobs, len(jobs))
	return models.ScrapeResult{Jobs: jobs, TotalCount: len(jobs)}
}

// degrade replaces a failed session with synthetic jobs. When the caller
// went away the site was never judged, so nothing is cached or alerted.
func (o *Orchestrator) degrade(ctx context.Context, q models.Query, key string, cause error) models.ScrapeResult {
	kind := Classify(cause)
	warning := kind.Warning(o.opts.BrowserTimeout)
	log.Printf("❌ Browser session failed for %q (%s): %v", key, kind, cause)
	metrics.ScrapeFailuresTotal.WithLabelValues(string(kind)).Inc()
	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFallback).Inc()

	jobs := o.fallback.Generate(q, o.opts.FallbackCount)
	result := models.ScrapeResult{Jobs: jobs, TotalCount: len(jobs), Warning: warning}
	if ctx.Err() != nil {
		log.Printf("ℹ️ Caller gone for %q (%v), fallback not cached", key, ctx.Err())
		return result
	}
	o.store(key, jobs, len(jobs))
	o.alert(q, kind, warning)
	return result
}

// runSession races the driver against the browser deadline. Whichever settles
// first decides the outcome; a session that loses is cancelled and its
// goroutine tracked until the driver has released it.
func (o *Orchestrator) runSession(ctx context.Context, target string) ([]models.RawRecord, error) {
	sessionCtx, cancel := context.WithTimeout(ctx, o.opts.BrowserTimeout)
	defer cancel()

	type outcome struct {
		records []models.RawRecord
		err     error
	}
	done := make(chan outcome, 1)
	start := time.Now()

	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		defer func() {
			metrics.BrowserSessionDuration.Observe(time.Since(start).Seconds())
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: driver panic: %v", ErrFetchFailure, r)}
			}
		}()
		records, err := o.driver.Fetch(sessionCtx, target)
		done <- outcome{records: records, err: err}
	}()

	select {
	case out := <-done:
		return out.records, out.err
	case <-sessionCtx.Done():
		if ctx.Err() == nil || ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w after %s", ErrFetchTimeout, o.opts.BrowserTimeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, ctx.Err())
	}
}

func (o *Orchestrator) store(key string, jobs []models.Job, total int) {
	o.cache.Put(key, jobs, total)
	metrics.CacheEntries.Set(float64(o.cache.Len()))
}

func (o *Orchestrator) alert(q models.Query, kind FailureKind, warning string) {
	if o.alerter == nil {
		return
	}
	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		if err := o.alerter.NotifyDegraded(q, kind, warning); err != nil {
			log.Printf("⚠️ Failed to send degradation alert: %v", err)
		}
	}()
}
