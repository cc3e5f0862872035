package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobscout/internal/api"
	"go-jobscout/internal/app"
	"go-jobscout/internal/config"
	"go-jobscout/internal/metrics"
	"go-jobscout/internal/scheduler"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("🔧 Config loaded. Target: %s", cfg.BaseURL)

	metrics.Init("jobscout", version)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer a.Close()

	sweeper := scheduler.New(a.Cache, cfg.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("❌ Failed to start cache sweeper: %v", err)
	}
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.Setup(api.NewHandler(a.Orchestrator, cfg.RequestTimeout)),
	}

	go func() {
		log.Printf("🚀 Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Server shutdown: %v", err)
	}
	log.Println("🏁 Server stopped.")
}
