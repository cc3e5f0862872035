package cache

import (
	"log"
	"sync"
	"time"

	"go-jobscout/internal/models"
)

// DefaultTTL is how long a cached search stays fresh.
const DefaultTTL = 30 * time.Minute

// Entry is one cached search. It is never mutated after Put.
type Entry struct {
	Jobs       []models.Job
	TotalCount int
	CreatedAt  time.Time
}

// Options configures a ResultCache. Zero values fall back to defaults.
type Options struct {
	TTL time.Duration
	// Capacity bounds the number of resident entries; 0 means unbounded.
	Capacity int
	// Now is the clock used for expiry checks.
	Now func() time.Time
}

// ResultCache maps a query fingerprint to its last result.
// Staleness is checked on read; stale entries stay resident until they are
// overwritten, swept or evicted for capacity.
type ResultCache struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// New creates an empty cache.
func New(opts Options) *ResultCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ResultCache{
		entries:  make(map[string]Entry),
		ttl:      opts.TTL,
		capacity: opts.Capacity,
		now:      opts.Now,
	}
}

// Get returns the entry for fingerprint, or false when there is none or it is
// older than the TTL. The returned Jobs slice is a copy.
func (c *ResultCache) Get(fingerprint string) (Entry, bool) {
	c.mu.RLock()
	entry, exists := c.entries[fingerprint]
	c.mu.RUnlock()

	if !exists || c.isStale(entry) {
		return Entry{}, false
	}
	entry.Jobs = cloneJobs(entry.Jobs)
	return entry, true
}

// Put stores jobs for fingerprint, replacing whatever was there.
// When the cache is full the oldest entry is evicted first.
func (c *ResultCache) Put(fingerprint string, jobs []models.Job, totalCount int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[fingerprint]; !exists && c.capacity > 0 && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[fingerprint] = Entry{
		Jobs:       cloneJobs(jobs),
		TotalCount: totalCount,
		CreatedAt:  c.now(),
	}
}

// Len returns the number of resident entries, stale ones included.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes stale entries and returns how many were dropped.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.isStale(entry) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("🧹 Swept %d stale cache entries (%d left)", removed, len(c.entries))
	}
	return removed
}

func (c *ResultCache) isStale(entry Entry) bool {
	return c.now().Sub(entry.CreatedAt) > c.ttl
}

// evictOldest must be called with mu held.
func (c *ResultCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.CreatedAt.Before(oldest) {
			oldestKey = key
			oldest = entry.CreatedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func cloneJobs(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	return out
}
