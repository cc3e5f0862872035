package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"go-jobscout/internal/cache"
	"go-jobscout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	sweeps atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.sweeps.Add(1)
	return 0
}

func (c *countingSweeper) Len() int { return 0 }

func TestRunOnce_SweepsStaleEntries(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := cache.New(cache.Options{TTL: time.Minute, Now: func() time.Time { return now }})
	c.Put("old", []models.Job{{ID: "1"}}, 1)

	now = now.Add(30 * time.Second)
	c.Put("new", []models.Job{{ID: "2"}}, 1)

	now = now.Add(45 * time.Second)
	s := New(c, "")
	assert.Equal(t, 1, s.RunOnce())
	assert.Equal(t, 1, c.Len())
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New(&countingSweeper{}, "every now and then")
	assert.Error(t, s.Start())
}

func TestStart_Ticks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping cron timing test in short mode")
	}
	sw := &countingSweeper{}
	s := New(sw, "@every 1s")
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return sw.sweeps.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}
