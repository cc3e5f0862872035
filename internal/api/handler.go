package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go-jobscout/internal/models"

	"github.com/gin-gonic/gin"
)

// Searcher answers a job search. The orchestrator satisfies it.
type Searcher interface {
	Fetch(ctx context.Context, q models.Query) (models.ScrapeResult, error)
}

// Handler serves the search endpoint.
type Handler struct {
	searcher       Searcher
	requestTimeout time.Duration
}

func NewHandler(searcher Searcher, requestTimeout time.Duration) *Handler {
	return &Handler{searcher: searcher, requestTimeout: requestTimeout}
}

// SearchJobs handles GET /api/jobs/search. Only a missing keyword is a client
// error; every scrape problem still produces a 200 with a warning.
func (h *Handler) SearchJobs(c *gin.Context) {
	q, err := models.NewQuery(
		c.Query("keywords"),
		c.Query("location"),
		c.Query("jobType"),
		c.Query("datePosted"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	result, err := h.searcher.Fetch(ctx, q)
	if err != nil {
		if errors.Is(err, models.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("❌ Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
