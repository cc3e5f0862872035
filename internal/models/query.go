package models

import (
	"errors"
	"fmt"
	"strings"
)

// JobTypeFilter is the job type a caller searches for. It is not the same as
// Job.JobType, which is a free-text label inferred per listing.
type JobTypeFilter string

const (
	JobTypeAll        JobTypeFilter = "all"
	JobTypeFullTime   JobTypeFilter = "fulltime"
	JobTypePartTime   JobTypeFilter = "parttime"
	JobTypeContract   JobTypeFilter = "contract"
	JobTypeTemporary  JobTypeFilter = "temporary"
	JobTypeInternship JobTypeFilter = "internship"
	JobTypeRemote     JobTypeFilter = "remote"
)

// DatePostedFilter is the recency window a caller searches for.
type DatePostedFilter string

const (
	DatePostedAnytime     DatePostedFilter = "anytime"
	DatePostedPast24Hours DatePostedFilter = "past24hours"
	DatePostedPastWeek    DatePostedFilter = "pastWeek"
	DatePostedPastMonth   DatePostedFilter = "pastMonth"
)

// ErrInvalidQuery is returned when a required search field is missing.
var ErrInvalidQuery = errors.New("invalid query")

// Query holds normalized search parameters. Build it with NewQuery.
type Query struct {
	Keywords   string
	Location   string
	JobType    JobTypeFilter
	DatePosted DatePostedFilter
}

// NewQuery trims the raw parameters and fills defaults for the optional ones.
// Unknown jobType/datePosted values are kept as given; they map to "no filter"
// when the search URL is built.
func NewQuery(keywords, location, jobType, datePosted string) (Query, error) {
	q := Query{
		Keywords:   strings.Join(strings.Fields(keywords), " "),
		Location:   strings.Join(strings.Fields(location), " "),
		JobType:    JobTypeFilter(strings.ToLower(strings.TrimSpace(jobType))),
		DatePosted: normalizeDatePosted(datePosted),
	}
	if q.Keywords == "" {
		return Query{}, fmt.Errorf("%w: keywords are required", ErrInvalidQuery)
	}
	if q.JobType == "" {
		q.JobType = JobTypeAll
	}
	return q, nil
}

// normalizeDatePosted accepts any casing of the known windows and returns the
// canonical camelCase form.
func normalizeDatePosted(raw string) DatePostedFilter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DatePostedAnytime
	}
	for _, d := range []DatePostedFilter{DatePostedAnytime, DatePostedPast24Hours, DatePostedPastWeek, DatePostedPastMonth} {
		if strings.EqualFold(raw, string(d)) {
			return d
		}
	}
	return DatePostedFilter(raw)
}

// Validate reports ErrInvalidQuery for a zero or hand-built Query without keywords.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Keywords) == "" {
		return fmt.Errorf("%w: keywords are required", ErrInvalidQuery)
	}
	return nil
}
