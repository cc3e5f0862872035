package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-jobscout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobsWithURLs(urls ...string) []models.Job {
	jobs := make([]models.Job, len(urls))
	for i, u := range urls {
		jobs[i] = models.Job{ID: u, URL: u}
	}
	return jobs
}

func TestUnseen_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	first := newJobCache(dir, clock)
	fresh := first.Unseen(jobsWithURLs("https://x/1", "https://x/2", "#", "#"))
	assert.Len(t, fresh, 4)
	assert.True(t, first.IsSeen("https://x/1"))
	assert.False(t, first.IsSeen("#"))

	second := newJobCache(dir, clock)
	fresh = second.Unseen(jobsWithURLs("https://x/1", "https://x/3", "#"))
	require.Len(t, fresh, 2)
	assert.Equal(t, "https://x/3", fresh[0].URL)
	assert.Equal(t, "#", fresh[1].URL)
}

func TestLoad_DropsExpired(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []seenEntry{
		{URL: "old", Timestamp: now.Add(-Retention - time.Hour).UnixMilli()},
		{URL: "recent", Timestamp: now.Add(-time.Hour).UnixMilli()},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_jobs.json"), data, 0644))

	jc := newJobCache(dir, func() time.Time { return now })
	assert.False(t, jc.IsSeen("old"))
	assert.True(t, jc.IsSeen("recent"))
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_jobs.json"), []byte("{not json"), 0644))

	jc := NewJobCache(dir)
	assert.Len(t, jc.Unseen(jobsWithURLs("https://x/1")), 1)
}
