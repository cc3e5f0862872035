package browser

import (
	"context"
	"time"

	"go-jobscout/utils"

	"github.com/playwright-community/playwright-go"
)

// DefaultUserAgents rotate across sessions.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
}

// stealthScript hides the most obvious automation marker from page scripts.
const stealthScript = `Object.defineProperty(navigator, 'webdriver', { get: () => undefined });`

// RandomDelay waits between min and max milliseconds, or until ctx is done.
func RandomDelay(ctx context.Context, rnd utils.Random, min, max int) error {
	duration := min
	if max > min {
		duration += rnd.Intn(max - min)
	}
	select {
	case <-time.After(time.Duration(duration) * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HumanScroll scrolls down in a few steps so lazily rendered cards load.
func HumanScroll(ctx context.Context, page playwright.Page, rnd utils.Random) error {
	for i := 0; i < 3; i++ {
		if err := page.Mouse().Wheel(0, 600); err != nil {
			return err
		}
		if err := RandomDelay(ctx, rnd, 150, 400); err != nil {
			return err
		}
	}
	//small correction upward
	return page.Mouse().Wheel(0, -200)
}
