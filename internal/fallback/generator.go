// Package fallback builds synthetic listings shown when the live search fails
// or comes back empty. Output has exactly the shape of extracted jobs.
package fallback

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-jobscout/internal/filter"
	"go-jobscout/internal/models"
	"go-jobscout/utils"

	"github.com/google/uuid"
)

var (
	roles     = []string{"Engineer", "Developer", "Specialist", "Analyst", "Consultant", "Manager", "Coordinator", "Architect"}
	seniority = []string{"", "Senior ", "Junior ", "Lead ", "Principal "}
	companies = []string{
		"Northwind Labs", "Bluepeak Systems", "Cobalt Ridge", "Lumen Works", "Harbor & Finch",
		"Quantive", "Redwood Analytics", "Silverline Health", "Brightforge", "Tandem Logistics",
	}
	locations = []string{
		"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA", "Remote",
		"Chicago, IL", "Boston, MA", "Denver, CO",
	}
	postedLabels = []string{
		"Just now", "2 hours ago", "5 hours ago", "1 day ago", "2 days ago", "3 days ago",
		"5 days ago", "1 week ago", "2 weeks ago", "3 weeks ago", "1 month ago",
	}
	salaries = []string{
		"$70,000 - $90,000", "$90,000 - $120,000", "$120,000 - $150,000", "$45/hr - $60/hr", "$150,000 - $180,000",
	}
	skillSets = [][]string{
		{"Go", "PostgreSQL", "Docker"},
		{"JavaScript", "React", "CSS"},
		{"Python", "Machine Learning", "SQL"},
		{"AWS", "Terraform", "Kubernetes"},
		{"Communication", "Leadership", "Planning"},
		{"Excel", "Reporting", "Data Analysis"},
	}
)

// Generator produces synthetic jobs. Given the same random source and clock
// it produces the same jobs; it never touches the cache or the network.
type Generator struct {
	rnd       utils.Random
	now       func() time.Time
	searchURL string
}

// New creates a Generator. searchURL becomes the link of every synthetic job.
func New(rnd utils.Random, searchURL string) *Generator {
	if rnd == nil {
		rnd = utils.NewTimeSeededRand()
	}
	return &Generator{rnd: rnd, now: time.Now, searchURL: searchURL}
}

// WithClock overrides the clock used for recency filtering.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate returns count jobs for q.
func (g *Generator) Generate(q models.Query, count int) []models.Job {
	if count <= 0 {
		return []models.Job{}
	}

	keywords := filter.TitleCase(q.Keywords)
	jobTypes := jobTypePool(q.JobType)
	posted := postedPool(q.DatePosted, g.now())
	link := g.link(q)

	jobs := make([]models.Job, 0, count)
	for i := 0; i < count; i++ {
		title := seniority[g.rnd.Intn(len(seniority))] + keywords
		if !endsWithRole(keywords) {
			title += " " + roles[i%len(roles)]
		}

		job := models.Job{
			ID:         g.newID(),
			Title:      title,
			Company:    companies[i%len(companies)],
			Location:   pickLocation(q.Location, i),
			JobType:    jobTypes[i%len(jobTypes)],
			DatePosted: posted[g.rnd.Intn(len(posted))],
			URL:        link,
			Skills:     append([]string(nil), skillSets[i%len(skillSets)]...),
		}
		if i%3 == 0 {
			job.Salary = salaries[(i/3)%len(salaries)]
		}
		job.Description = describe(job)
		jobs = append(jobs, job)
	}
	return jobs
}

// pickLocation reuses the requested location in four of every five slots and
// shows "Remote" in the fifth. Without a requested location it cycles the
// fixed list.
func pickLocation(requested string, i int) string {
	if requested == "" {
		return locations[i%len(locations)]
	}
	if i%5 == 4 {
		return filter.LabelRemote
	}
	return requested
}

// jobTypePool never returns an empty slice: a filter matching no label
// yields every label.
func jobTypePool(f models.JobTypeFilter) []string {
	var pool []string
	for _, label := range filter.JobTypeLabels {
		if filter.MatchesJobType(label, f) {
			pool = append(pool, label)
		}
	}
	if len(pool) == 0 {
		return filter.JobTypeLabels
	}
	return pool
}

func postedPool(window models.DatePostedFilter, now time.Time) []string {
	var pool []string
	for _, label := range postedLabels {
		if filter.PostedWithin(label, window, now) {
			pool = append(pool, label)
		}
	}
	if len(pool) == 0 {
		return postedLabels
	}
	return pool
}

func endsWithRole(keywords string) bool {
	fields := strings.Fields(keywords)
	if len(fields) == 0 {
		return false
	}
	last := fields[len(fields)-1]
	for _, role := range roles {
		if strings.EqualFold(last, role) {
			return true
		}
	}
	return false
}

func describe(job models.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is hiring a %s to join the team in %s.\n", job.Company, job.Title, job.Location)
	fmt.Fprintf(&b, "You will work with %s on day-to-day delivery.\n", strings.Join(job.Skills, ", "))
	fmt.Fprintf(&b, "Employment type: %s.", job.JobType)
	if job.Salary != "" {
		fmt.Fprintf(&b, "\nCompensation: %s.", job.Salary)
	}
	return b.String()
}

func (g *Generator) link(q models.Query) string {
	if g.searchURL == "" {
		return models.PlaceholderURL
	}
	params := url.Values{}
	params.Set("keywords", q.Keywords)
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	return g.searchURL + "?" + params.Encode()
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
