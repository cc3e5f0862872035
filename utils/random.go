package utils

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the source of randomness for the presentation heuristics and the
// fallback generator. Read makes it usable as an io.Reader for id generation.
type Random interface {
	Intn(n int) int
	Read(p []byte) (int, error)
}

// LockedRand is a math/rand generator safe for use by concurrent requests.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a LockedRand seeded with seed. Tests pass a fixed seed.
func NewRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRand returns a LockedRand seeded from the wall clock.
func NewTimeSeededRand() *LockedRand {
	return NewRand(time.Now().UnixNano())
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
