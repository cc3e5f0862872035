// Package scheduler runs the periodic cache sweep.
package scheduler

import (
	"fmt"
	"log"

	"go-jobscout/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSpec sweeps every five minutes.
const DefaultSpec = "@every 5m"

// Sweeper drops stale entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
	Len() int
}

// Scheduler wraps robfig/cron around a Sweeper.
type Scheduler struct {
	cron  *cron.Cron
	cache Sweeper
	spec  string
}

// New creates a Scheduler; an empty spec means DefaultSpec.
func New(cache Sweeper, spec string) *Scheduler {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		cache: cache,
		spec:  spec,
	}
}

// Start registers the sweep and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce() }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("⏰ Cache sweeper started (%s)", s.spec)
	return nil
}

// Stop halts the cron loop and waits for a running sweep.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("⏰ Cache sweeper stopped")
}

// RunOnce sweeps immediately and refreshes the cache size gauge.
func (s *Scheduler) RunOnce() int {
	removed := s.cache.Sweep()
	metrics.CacheEntries.Set(float64(s.cache.Len()))
	return removed
}
