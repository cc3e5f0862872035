package fallback

import (
	"strings"
	"sync"
	"testing"
	"time"

	"go-jobscout/internal/filter"
	"go-jobscout/internal/models"
	"go-jobscout/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchURL = "https://www.linkedin.com/jobs/search"

func newGenerator(seed int64) *Generator {
	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return New(utils.NewRand(seed), searchURL).WithClock(func() time.Time { return fixed })
}

func query(t *testing.T, keywords, location, jobType, datePosted string) models.Query {
	t.Helper()
	q, err := models.NewQuery(keywords, location, jobType, datePosted)
	require.NoError(t, err)
	return q
}

func TestGenerate_CountAndShape(t *testing.T) {
	jobs := newGenerator(1).Generate(query(t, "golang", "", "all", "anytime"), 12)
	require.Len(t, jobs, 12)

	ids := map[string]bool{}
	for i, job := range jobs {
		assert.NotEmpty(t, job.ID)
		assert.False(t, ids[job.ID], "ids must be unique")
		ids[job.ID] = true

		assert.Contains(t, job.Title, "Golang")
		assert.Equal(t, companies[i%len(companies)], job.Company)
		assert.Equal(t, locations[i%len(locations)], job.Location)
		assert.NotEmpty(t, job.JobType)
		assert.NotEmpty(t, job.DatePosted)
		assert.NotEmpty(t, job.Skills)
		assert.True(t, strings.HasPrefix(job.URL, searchURL+"?"))
		assert.Contains(t, job.Description, job.Company)
		assert.Contains(t, job.Description, job.Location)
		assert.Greater(t, strings.Count(job.Description, "\n"), 0)

		if i%3 == 0 {
			assert.NotEmpty(t, job.Salary)
			assert.Contains(t, job.Description, job.Salary)
		} else {
			assert.Empty(t, job.Salary)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	q := query(t, "data analyst", "Berlin", "all", "pastWeek")
	assert.Equal(t, newGenerator(7).Generate(q, 8), newGenerator(7).Generate(q, 8))
}

func TestGenerate_LocationBias(t *testing.T) {
	jobs := newGenerator(3).Generate(query(t, "nurse", "Denver, CO", "all", "anytime"), 10)
	for i, job := range jobs {
		if i%5 == 4 {
			assert.Equal(t, filter.LabelRemote, job.Location)
		} else {
			assert.Equal(t, "Denver, CO", job.Location)
		}
	}
}

func TestGenerate_JobTypeFilterNeverEmpty(t *testing.T) {
	filters := []string{"all", "fulltime", "parttime", "contract", "temporary", "internship", "remote", "freelance", "nonsense"}
	for _, f := range filters {
		t.Run(f, func(t *testing.T) {
			jobs := newGenerator(5).Generate(query(t, "engineer", "", f, "anytime"), 7)
			require.Len(t, jobs, 7)
			for _, job := range jobs {
				assert.Contains(t, filter.JobTypeLabels, job.JobType)
				if f == "remote" {
					assert.Equal(t, filter.LabelRemote, job.JobType)
				}
				if f == "internship" {
					assert.Equal(t, filter.LabelInternship, job.JobType)
				}
			}
		})
	}
}

func TestGenerate_RecencyWindow(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	jobs := newGenerator(9).Generate(query(t, "barista", "", "all", "past24hours"), 20)
	for _, job := range jobs {
		assert.True(t, filter.PostedWithin(job.DatePosted, models.DatePostedPast24Hours, now), job.DatePosted)
	}
}

func TestGenerate_TitleDoesNotRepeatRole(t *testing.T) {
	jobs := newGenerator(2).Generate(query(t, "engineer", "", "all", "anytime"), 6)
	for _, job := range jobs {
		assert.True(t, strings.HasSuffix(job.Title, "Engineer"), job.Title)
		assert.NotContains(t, job.Title, "Engineer Engineer")
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	jobs := newGenerator(1).Generate(query(t, "x", "", "", ""), 0)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestGenerate_ConcurrentCallers(t *testing.T) {
	g := newGenerator(3)
	q := query(t, "golang developer", "Austin", "all", "anytime")

	var wg sync.WaitGroup
	results := make([][]models.Job, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Generate(q, 10)
		}(i)
	}
	wg.Wait()

	for _, jobs := range results {
		require.Len(t, jobs, 10)
		for _, job := range jobs {
			assert.Contains(t, job.Title, "Golang Developer")
		}
	}
}
