package main

import (
	"fmt"
	"log"

	"go-jobscout/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Port: %s\n", cfg.Port)
	fmt.Printf("   Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("   Page size / fallback: %d / %d\n", cfg.PageSize, cfg.FallbackCount)
	fmt.Printf("   Cache TTL: %s (capacity %d, sweep %s)\n", cfg.CacheTTL, cfg.CacheCapacity, cfg.SweepSchedule)
	fmt.Printf("   Browser / request timeout: %s / %s\n", cfg.BrowserTimeout, cfg.RequestTimeout)
	fmt.Printf("   Headless: %t, coalesce: %t\n", cfg.Headless, cfg.Coalesce)
	fmt.Printf("   Telegram alerts: %t\n", cfg.AlertsEnabled())
}
