// Package extract turns raw listing cards captured by a browser session into
// normalized jobs. Every field degrades independently to a placeholder.
package extract

import (
	"log"
	"net/url"
	"strings"

	"go-jobscout/internal/filter"
	"go-jobscout/internal/models"
	"go-jobscout/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// Extractor applies the selector fallback chains to raw records.
type Extractor struct {
	base       *url.URL
	rnd        utils.Random
	maxRecords int
}

// New creates an Extractor. baseURL resolves relative links; maxRecords bounds
// how many raw records are looked at (0 means no bound).
func New(baseURL string, rnd utils.Random, maxRecords int) *Extractor {
	base, err := url.Parse(baseURL)
	if err != nil {
		log.Printf("⚠️ Invalid extraction base URL %q: %v", baseURL, err)
		base = nil
	}
	if rnd == nil {
		rnd = utils.NewTimeSeededRand()
	}
	return &Extractor{base: base, rnd: rnd, maxRecords: maxRecords}
}

// Extract converts records into jobs, preserving order. Records beyond
// maxRecords are dropped before any parsing happens.
func (e *Extractor) Extract(records []models.RawRecord) []models.Job {
	if e.maxRecords > 0 && len(records) > e.maxRecords {
		records = records[:e.maxRecords]
	}

	jobs := make([]models.Job, 0, len(records))
	for _, rec := range records {
		jobs = append(jobs, e.extractOne(rec))
	}
	return jobs
}

func (e *Extractor) extractOne(rec models.RawRecord) models.Job {
	card := parseCard(rec.HTML)

	title := resolve(rec, card, models.FieldTitle)
	company := resolve(rec, card, models.FieldCompany)
	location := resolve(rec, card, models.FieldLocation)
	posted := resolve(rec, card, models.FieldPostedDate)

	job := models.Job{
		ID:         e.newID(),
		Title:      orDefault(title, models.PlaceholderTitle),
		Company:    orDefault(company, models.PlaceholderCompany),
		Location:   orDefault(location, models.PlaceholderLocation),
		DatePosted: orDefault(posted, models.PlaceholderDatePosted),
		URL:        orDefault(e.absolute(resolve(rec, card, models.FieldLink), true), models.PlaceholderURL),
		LogoURL:    e.absolute(resolve(rec, card, models.FieldLogo), false),
		Salary:     resolve(rec, card, models.FieldSalary),
	}
	job.JobType = filter.InferJobType(job.Title)
	job.Skills = e.assignSkills()

	job.Description = firstText(card, snippetSelectors)
	if job.Description == "" {
		job.Description = job.Title + " at " + job.Company + " in " + job.Location + "."
	}
	return job
}

// assignSkills picks one predefined tag set uniformly at random. It is a
// presentation heuristic; nothing is read from the listing itself.
func (e *Extractor) assignSkills() []string {
	set := skillSets[e.rnd.Intn(len(skillSets))]
	out := make([]string, len(set))
	copy(out, set)
	return out
}

func (e *Extractor) newID() string {
	id, err := uuid.NewRandomFromReader(e.rnd)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// absolute resolves ref against the base URL. Tracking query parameters are
// dropped from listing links so the same listing keeps the same URL.
func (e *Extractor) absolute(ref string, stripQuery bool) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if e.base != nil && !u.IsAbs() {
		u = e.base.ResolveReference(u)
	}
	if stripQuery {
		u.RawQuery = ""
		u.Fragment = ""
	}
	return u.String()
}

// resolve tries the value the session captured first, then each selector.
func resolve(rec models.RawRecord, card *goquery.Selection, field models.Field) string {
	if v := filter.CleanText(rec.Fields[field]); v != "" {
		return v
	}
	return firstText(card, fieldSelectors[field])
}

func firstText(card *goquery.Selection, selectors []selector) string {
	if card == nil {
		return ""
	}
	for _, s := range selectors {
		match := card.Find(s.css).First()
		if match.Length() == 0 {
			continue
		}
		var v string
		if s.attr == "" {
			v = match.Text()
		} else {
			v, _ = match.Attr(s.attr)
		}
		if v = filter.CleanText(v); v != "" {
			return v
		}
	}
	return ""
}

func parseCard(html string) *goquery.Selection {
	if strings.TrimSpace(html) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("⚠️ Could not parse card markup: %v", err)
		return nil
	}
	return doc.Selection
}

func orDefault(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
