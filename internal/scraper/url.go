package scraper

import (
	"net/url"
	"strings"

	"go-jobscout/internal/filter"
	"go-jobscout/internal/models"
)

type queryParam struct {
	key   string
	value string
}

// Filters missing from these tables add no parameter to the search URL.
var (
	jobTypeParams = map[models.JobTypeFilter]queryParam{
		models.JobTypeFullTime:   {key: "f_JT", value: "F"},
		models.JobTypePartTime:   {key: "f_JT", value: "P"},
		models.JobTypeContract:   {key: "f_JT", value: "C"},
		models.JobTypeTemporary:  {key: "f_JT", value: "T"},
		models.JobTypeInternship: {key: "f_JT", value: "I"},
		models.JobTypeRemote:     {key: "f_WT", value: "2"},
	}

	datePostedParams = map[models.DatePostedFilter]queryParam{
		models.DatePostedPast24Hours: {key: "f_TPR", value: "r86400"},
		models.DatePostedPastWeek:    {key: "f_TPR", value: "r604800"},
		models.DatePostedPastMonth:   {key: "f_TPR", value: "r2592000"},
	}
)

// BuildSearchURL encodes q onto the search page URL.
func BuildSearchURL(base string, q models.Query) string {
	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Path: base}
	}

	params := u.Query()
	params.Set("keywords", q.Keywords)
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if p, ok := jobTypeParams[q.JobType]; ok {
		params.Set(p.key, p.value)
	}
	if p, ok := datePostedParams[q.DatePosted]; ok {
		params.Set(p.key, p.value)
	}
	u.RawQuery = params.Encode()
	return u.String()
}

// Fingerprint is the cache key for q: its four fields, normalized, in order.
func Fingerprint(q models.Query) string {
	return strings.Join([]string{
		filter.NormalizeText(q.Keywords),
		filter.NormalizeText(q.Location),
		strings.ToLower(string(q.JobType)),
		string(q.DatePosted),
	}, "|")
}
