package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go-jobscout/internal/browser"
	"go-jobscout/internal/extract"
	"go-jobscout/internal/models"
	"go-jobscout/internal/scraper"
	"go-jobscout/utils"
)

func main() {
	keywords := flag.String("keywords", "golang", "search keywords")
	location := flag.String("location", "", "location filter")
	base := flag.String("base", "https://www.linkedin.com/jobs/search", "search page")
	headless := flag.Bool("headless", false, "run without a window")
	flag.Parse()

	fmt.Println("🌐 Testing browser driver...")

	rnd := utils.NewTimeSeededRand()
	d, err := browser.NewPlaywright(browser.Options{
		Headless:      *headless,
		ScreenshotDir: "logs/screenshots",
		Scroll:        true,
		Rand:          rnd,
	})
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer d.Close()

	fmt.Println("✅ Playwright started")

	q, err := models.NewQuery(*keywords, *location, "", "")
	if err != nil {
		log.Fatalf("Invalid query: %v", err)
	}
	target := scraper.BuildSearchURL(*base, q)

	ctx, cancel := context.WithTimeout(context.Background(), scraper.DefaultBrowserTimeout)
	defer cancel()

	start := time.Now()
	records, err := d.Fetch(ctx, target)
	if err != nil {
		log.Fatalf("Fetch failed (%s): %v", scraper.Classify(err), err)
	}
	fmt.Printf("✅ %d cards in %s\n", len(records), time.Since(start).Round(time.Millisecond))

	for _, job := range extract.New(*base, rnd, scraper.DefaultPageSize).Extract(records) {
		fmt.Printf("  %s @ %s | %s | %s\n", job.Title, job.Company, job.Location, job.URL)
	}
}
