package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go-jobscout/internal/models"
	"go-jobscout/internal/scraper"
	"go-jobscout/utils"

	"github.com/playwright-community/playwright-go"
)

const (
	// DefaultCardSelector matches one listing card on the guest search page.
	DefaultCardSelector = "ul.jobs-search__results-list > li, div.base-search-card, li.jobs-search-results__list-item"
	// DefaultNoResultsSelector matches the banner shown when a search is empty.
	DefaultNoResultsSelector = ".jobs-search-no-results-banner, .jobs-search-two-pane__no-results-banner--expand, .no-results"

	defaultNavigationTimeout = 20 * time.Second
	defaultMaxRecords        = 25
)

// Options configures the Playwright driver.
type Options struct {
	Headless          bool
	UserAgents        []string
	CookiesPath       string
	NavigationTimeout time.Duration
	CardSelector      string
	NoResultsSelector string
	// MaxRecords caps the card markup returned per session.
	MaxRecords int
	// RequestsPerSecond limits navigations per host; zero disables it.
	RequestsPerSecond float64
	Burst             int
	ScreenshotDir     string
	// Scroll nudges the page to load lazily rendered cards.
	Scroll bool
	Rand   utils.Random
}

// Driver runs one isolated browser context per Fetch on a shared Chromium
// instance.
type Driver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	cookies []playwright.OptionalCookie
	limiter *HostLimiter
	shots   *utils.ScreenShotDebugger
}

// NewPlaywright starts Playwright and launches Chromium.
func NewPlaywright(opts Options) (*Driver, error) {
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = defaultNavigationTimeout
	}
	if opts.CardSelector == "" {
		opts.CardSelector = DefaultCardSelector
	}
	if opts.NoResultsSelector == "" {
		opts.NoResultsSelector = DefaultNoResultsSelector
	}
	if opts.MaxRecords <= 0 {
		opts.MaxRecords = defaultMaxRecords
	}
	if len(opts.UserAgents) == 0 {
		opts.UserAgents = DefaultUserAgents
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewTimeSeededRand()
	}

	d := &Driver{
		opts:    opts,
		limiter: NewHostLimiter(opts.RequestsPerSecond, opts.Burst),
		shots:   utils.NewScreenShotDebugger(opts.ScreenshotDir),
	}

	if opts.CookiesPath != "" {
		cookies, err := LoadCookies(opts.CookiesPath)
		if err != nil {
			log.Printf("⚠️ Could not load cookies from %s: %v", opts.CookiesPath, err)
		} else {
			d.cookies = cookies
			log.Printf("🍪 Loaded %d cookies", len(cookies))
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--no-sandbox",
			"--disable-dev-shm-usage",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	d.pw = pw
	d.browser = browser
	return d, nil
}

// Fetch loads target and returns the outer HTML of each listing card. A
// "no results" page yields an empty, non-nil slice.
func (d *Driver) Fetch(ctx context.Context, target string) ([]models.RawRecord, error) {
	if err := d.limiter.WaitURL(ctx, target); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: rate limit wait: %v", scraper.ErrFetchTimeout, err)
	}

	bctx, err := d.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:        playwright.String(d.userAgent()),
		Locale:           playwright.String("en-US"),
		Viewport:         &playwright.Size{Width: 1366, Height: 768},
		ExtraHttpHeaders: map[string]string{"Accept-Language": "en-US,en;q=0.9"},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	// The context is torn down either when Fetch returns or as soon as ctx
	// ends, which aborts any pending navigation or wait.
	var closeOnce sync.Once
	release := func() {
		closeOnce.Do(func() {
			if err := bctx.Close(); err != nil {
				log.Printf("⚠️ Failed to close browser context: %v", err)
			}
		})
	}
	stop := context.AfterFunc(ctx, release)
	defer func() {
		stop()
		release()
	}()

	if err := bctx.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		log.Printf("⚠️ Could not install stealth script: %v", err)
	}
	if len(d.cookies) > 0 {
		if err := bctx.AddCookies(d.cookies); err != nil {
			log.Printf("⚠️ Could not add cookies: %v", err)
		}
	}

	page, err := bctx.NewPage()
	if err != nil {
		return nil, d.sessionError(ctx, fmt.Errorf("could not create page: %w", err))
	}

	timeout := d.stepTimeout(ctx)
	page.SetDefaultTimeout(timeout)

	log.Printf("🔍 Navigating: %s", target)
	resp, err := page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeout),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.shots.CaptureAndLog(page, "navigation_failed", "Navigation failed")
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: navigation: %v", scraper.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", scraper.ErrNavigation, err)
	}
	if resp != nil && resp.Status() >= 400 {
		return nil, fmt.Errorf("%w: status %d", scraper.ErrNavigation, resp.Status())
	}

	if _, err := page.WaitForSelector(d.opts.CardSelector+", "+d.opts.NoResultsSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(d.stepTimeout(ctx)),
	}); err != nil {
		if ctx.Err() == nil {
			d.shots.CaptureAndLog(page, "no_cards", "Listing cards never appeared")
		}
		return nil, d.sessionError(ctx, fmt.Errorf("waiting for listings: %w", err))
	}

	if visible, _ := page.Locator(d.opts.NoResultsSelector).First().IsVisible(); visible {
		log.Printf("ℹ️ Search page reports no results")
		return []models.RawRecord{}, nil
	}

	if d.opts.Scroll {
		if err := HumanScroll(ctx, page, d.opts.Rand); err != nil {
			return nil, d.sessionError(ctx, fmt.Errorf("scrolling: %w", err))
		}
	}

	raw, err := page.Locator(d.opts.CardSelector).EvaluateAll(`els => els.map(el => el.outerHTML)`)
	if err != nil {
		return nil, d.sessionError(ctx, fmt.Errorf("reading listing cards: %w", err))
	}

	records := toRecords(raw, d.opts.MaxRecords)
	log.Printf("✅ Captured %d listing cards", len(records))
	return records, nil
}

// Close shuts the browser and the Playwright driver down.
func (d *Driver) Close() error {
	var errs []error
	if d.browser != nil {
		if err := d.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if d.pw != nil {
		if err := d.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (d *Driver) userAgent() string {
	return d.opts.UserAgents[d.opts.Rand.Intn(len(d.opts.UserAgents))]
}

// stepTimeout is the navigation timeout in milliseconds, shortened to the
// remaining ctx deadline.
func (d *Driver) stepTimeout(ctx context.Context) float64 {
	timeout := d.opts.NavigationTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout < time.Millisecond {
		timeout = time.Millisecond
	}
	return float64(timeout.Milliseconds())
}

func (d *Driver) sessionError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if isTimeout(err) {
		return fmt.Errorf("%w: %v", scraper.ErrFetchTimeout, err)
	}
	return fmt.Errorf("%w: %v", scraper.ErrFetchFailure, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, playwright.ErrTimeout) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

func toRecords(raw interface{}, max int) []models.RawRecord {
	items, ok := raw.([]interface{})
	if !ok {
		return []models.RawRecord{}
	}
	records := make([]models.RawRecord, 0, len(items))
	for _, item := range items {
		if len(records) >= max {
			break
		}
		html, ok := item.(string)
		if !ok || strings.TrimSpace(html) == "" {
			continue
		}
		records = append(records, models.RawRecord{HTML: html})
	}
	return records
}
