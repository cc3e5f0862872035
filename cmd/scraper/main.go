package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-jobscout/internal/app"
	"go-jobscout/internal/config"
	"go-jobscout/internal/dedup"
	"go-jobscout/internal/models"
)

func main() {
	keywords := flag.String("keywords", "", "search keywords (required)")
	location := flag.String("location", "", "location filter")
	jobType := flag.String("jobType", "all", "all|fulltime|parttime|contract|temporary|internship|remote")
	datePosted := flag.String("datePosted", "anytime", "anytime|past24hours|pastWeek|pastMonth")
	configPath := flag.String("config", config.DefaultPath, "path to config.yaml")
	onlyNew := flag.Bool("only-new", false, "drop listings reported by a previous run")
	seenDir := flag.String("seen-dir", ".cache", "directory for the seen-listing file")
	flag.Parse()

	q, err := models.NewQuery(*keywords, *location, *jobType, *datePosted)
	if err != nil {
		flag.Usage()
		log.Fatalf("❌ %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("🔧 Config loaded. Target: %s", cfg.BaseURL)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	log.Printf("🚀 Searching for %q in %q...", q.Keywords, q.Location)
	result, err := a.Orchestrator.Fetch(ctx, q)
	if err != nil {
		log.Fatalf("❌ Search failed: %v", err)
	}
	if result.Warning != "" {
		log.Printf("⚠️ %s", result.Warning)
	}
	log.Printf("📦 Total jobs collected: %d", len(result.Jobs))

	//sample listings are not worth remembering
	if *onlyNew && result.Warning == "" {
		before := len(result.Jobs)
		result.Jobs = dedup.NewJobCache(*seenDir).Unseen(result.Jobs)
		log.Printf("🔍 Deduplication: %d total -> %d unseen jobs", before, len(result.Jobs))
	}

	for _, job := range result.Jobs {
		log.Printf("  %s @ %s (%s, %s)", job.Title, job.Company, job.Location, job.DatePosted)
	}

	if a.Bot != nil {
		statusMsg := fmt.Sprintf("Search %q finished with %d jobs.", q.Keywords, len(result.Jobs))
		if err := a.Bot.SendStatus(statusMsg); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	saveResult(result)

	log.Println("🏁 Execution finished.")
}

func saveResult(result models.ScrapeResult) {
	if len(result.Jobs) == 0 {
		log.Println("ℹ️ No jobs to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-search-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-search-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(result, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal jobs to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
