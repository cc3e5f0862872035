// Package dedup remembers which listings the one-shot CLI has already
// reported, across runs.
package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-jobscout/internal/models"
)

// Retention is how long a seen listing is remembered.
const Retention = 30 * 24 * time.Hour

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

type JobCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	now      func() time.Time
}

// NewJobCache creates or loads the seen-listing file in cacheDir.
func NewJobCache(cacheDir string) *JobCache {
	return newJobCache(cacheDir, time.Now)
}

func newJobCache(cacheDir string, now func() time.Time) *JobCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &JobCache{
		filePath: filepath.Join(cacheDir, "seen_jobs.json"),
		seen:     make(map[string]int64),
		now:      now,
	}
	cache.load()
	return cache
}

// IsSeen checks if a URL has already been reported.
func (jc *JobCache) IsSeen(url string) bool {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	_, exists := jc.seen[url]
	return exists
}

// Unseen returns the jobs whose URL has not been reported yet and marks them
// seen. Jobs without a real URL are always returned and never recorded.
func (jc *JobCache) Unseen(jobs []models.Job) []models.Job {
	jc.mu.Lock()
	defer jc.mu.Unlock()

	now := jc.now().UnixMilli()
	fresh := make([]models.Job, 0, len(jobs))
	changed := false
	for _, job := range jobs {
		if job.URL == "" || job.URL == models.PlaceholderURL {
			fresh = append(fresh, job)
			continue
		}
		if _, exists := jc.seen[job.URL]; exists {
			continue
		}
		jc.seen[job.URL] = now
		fresh = append(fresh, job)
		changed = true
	}

	if changed {
		jc.save()
	}
	return fresh
}

// load reads the cache from disk, dropping entries older than Retention.
func (jc *JobCache) load() {
	data, err := os.ReadFile(jc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_jobs.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_jobs.json: %v", err)
		return
	}

	cutoff := jc.now().Add(-Retention).UnixMilli()
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			jc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen jobs (%d expired and removed)", loaded, len(entries)-loaded)
}

// save must be called with mu held.
func (jc *JobCache) save() {
	entries := make([]seenEntry, 0, len(jc.seen))
	for url, ts := range jc.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen jobs: %v", err)
		return
	}
	if err := os.WriteFile(jc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_jobs.json: %v", err)
		return
	}
	log.Printf("💾 Saved %d seen jobs to cache", len(entries))
}
