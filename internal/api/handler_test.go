package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobscout/internal/cache"
	"go-jobscout/internal/extract"
	"go-jobscout/internal/fallback"
	"go-jobscout/internal/models"
	"go-jobscout/internal/scraper"
	"go-jobscout/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.linkedin.com/jobs/search"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSearcher struct {
	got      models.Query
	deadline bool
	result   models.ScrapeResult
	err      error
}

func (f *fakeSearcher) Fetch(ctx context.Context, q models.Query) (models.ScrapeResult, error) {
	f.got = q
	_, f.deadline = ctx.Deadline()
	return f.result, f.err
}

type failingDriver struct{}

func (failingDriver) Fetch(ctx context.Context, url string) ([]models.RawRecord, error) {
	return nil, errors.New("net::ERR_NAME_NOT_RESOLVED")
}

func do(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchJobs_PassesNormalizedQuery(t *testing.T) {
	fs := &fakeSearcher{result: models.ScrapeResult{Jobs: []models.Job{{ID: "1", Title: "Go Engineer"}}, TotalCount: 40}}
	r := Setup(NewHandler(fs, time.Minute))

	w := do(t, r, "/api/jobs/search?keywords=++go++engineer+&location=Austin&jobType=FullTime&datePosted=PASTWEEK")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "go engineer", fs.got.Keywords)
	assert.Equal(t, models.JobTypeFullTime, fs.got.JobType)
	assert.Equal(t, models.DatePostedPastWeek, fs.got.DatePosted)
	assert.True(t, fs.deadline)

	var res models.ScrapeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 40, res.TotalCount)
	assert.False(t, res.IsFromCache)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Go Engineer", res.Jobs[0].Title)
}

func TestSearchJobs_MissingKeywords(t *testing.T) {
	fs := &fakeSearcher{}
	r := Setup(NewHandler(fs, time.Minute))

	for _, target := range []string{"/api/jobs/search", "/api/jobs/search?keywords=+++&location=Austin"} {
		w := do(t, r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "keywords are required")
	}
	assert.Empty(t, fs.got.Keywords)
}

func TestSearchJobs_UnexpectedError(t *testing.T) {
	r := Setup(NewHandler(&fakeSearcher{err: errors.New("boom")}, 0))
	w := do(t, r, "/api/jobs/search?keywords=go")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSearchJobs_FallbackThenCache(t *testing.T) {
	rnd := utils.NewRand(7)
	orch := scraper.New(
		failingDriver{},
		cache.New(cache.Options{}),
		extract.New(baseURL, rnd, scraper.DefaultPageSize),
		fallback.New(rnd, baseURL),
		scraper.Options{BaseURL: baseURL, BrowserTimeout: time.Second},
	)
	defer orch.Close()
	r := Setup(NewHandler(orch, 5*time.Second))

	w := do(t, r, "/api/jobs/search?keywords=data+analyst&location=Denver")
	require.Equal(t, http.StatusOK, w.Code)

	var first models.ScrapeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.False(t, first.IsFromCache)
	assert.Contains(t, first.Warning, "navigation failure")
	assert.Len(t, first.Jobs, scraper.DefaultFallbackCount)
	assert.Equal(t, len(first.Jobs), first.TotalCount)

	w = do(t, r, "/api/jobs/search?keywords=Data+Analyst&location=denver")
	require.Equal(t, http.StatusOK, w.Code)

	var second models.ScrapeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.IsFromCache)
	assert.Empty(t, second.Warning)
	assert.Equal(t, first.Jobs, second.Jobs)
}

func TestHealthAndMetrics(t *testing.T) {
	r := Setup(NewHandler(&fakeSearcher{}, 0))

	w := do(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	do(t, r, "/api/jobs/search?keywords=go")
	w = do(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/jobs/search",status_code="200"}`)
}
