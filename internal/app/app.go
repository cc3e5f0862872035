// Package app wires configuration into a ready-to-use search stack shared by
// the HTTP server and the one-shot CLI.
package app

import (
	"fmt"
	"log"

	"go-jobscout/internal/browser"
	"go-jobscout/internal/cache"
	"go-jobscout/internal/config"
	"go-jobscout/internal/extract"
	"go-jobscout/internal/fallback"
	"go-jobscout/internal/scraper"
	"go-jobscout/internal/telegram"
	"go-jobscout/utils"
)

type App struct {
	Config       *config.Config
	Cache        *cache.ResultCache
	Driver       *browser.Driver
	Orchestrator *scraper.Orchestrator
	Bot          *telegram.Bot
}

// New launches the browser and builds the orchestrator around it.
func New(cfg *config.Config) (*App, error) {
	rnd := utils.NewTimeSeededRand()

	driver, err := browser.NewPlaywright(browser.Options{
		Headless:          cfg.Headless,
		UserAgents:        cfg.UserAgents,
		CookiesPath:       cfg.CookiesPath,
		NavigationTimeout: cfg.BrowserTimeout,
		MaxRecords:        cfg.PageSize,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             1,
		ScreenshotDir:     cfg.ScreenshotDir,
		Scroll:            true,
		Rand:              rnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init Playwright: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	resultCache := cache.New(cache.Options{
		TTL:      cfg.CacheTTL,
		Capacity: cfg.CacheCapacity,
	})

	orch := scraper.New(
		driver,
		resultCache,
		extract.New(cfg.BaseURL, rnd, cfg.PageSize),
		fallback.New(rnd, cfg.BaseURL),
		scraper.Options{
			BaseURL:        cfg.BaseURL,
			PageSize:       cfg.PageSize,
			FallbackCount:  cfg.FallbackCount,
			BrowserTimeout: cfg.BrowserTimeout,
			Coalesce:       cfg.Coalesce,
		},
	)

	a := &App{
		Config:       cfg,
		Cache:        resultCache,
		Driver:       driver,
		Orchestrator: orch,
	}

	if cfg.AlertsEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram alerts disabled: %v", err)
		} else {
			a.Bot = bot
			orch.WithAlerter(bot)
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	return a, nil
}

// Close waits for in-flight sessions and then shuts the browser down.
func (a *App) Close() {
	a.Orchestrator.Close()
	if err := a.Driver.Close(); err != nil {
		log.Printf("⚠️ Failed to close browser: %v", err)
	}
}
