package filter

import (
	"strings"

	"go-jobscout/internal/models"
)

// Job type labels shown on listings.
const (
	LabelFullTime   = "Full-time"
	LabelPartTime   = "Part-time"
	LabelContract   = "Contract"
	LabelTemporary  = "Temporary"
	LabelInternship = "Internship"
	LabelRemote     = "Remote"
)

// JobTypeLabels is every label a listing can carry, in display order.
var JobTypeLabels = []string{LabelFullTime, LabelPartTime, LabelContract, LabelTemporary, LabelInternship, LabelRemote}

// jobTypeRules are checked in order; the first keyword found in the title wins.
var jobTypeRules = []struct {
	keywords []string
	label    string
}{
	{keywords: []string{"part-time", "part time"}, label: LabelPartTime},
	{keywords: []string{"contract"}, label: LabelContract},
	{keywords: []string{"intern"}, label: LabelInternship},
	{keywords: []string{"remote"}, label: LabelRemote},
}

// InferJobType guesses a listing's job type from its title. This is a
// presentation heuristic: it never looks at the listing body, and plain
// substring matching means "International Sales" reads as an internship.
func InferJobType(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range jobTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return LabelFullTime
}

var filterLabels = map[models.JobTypeFilter]string{
	models.JobTypeFullTime:   LabelFullTime,
	models.JobTypePartTime:   LabelPartTime,
	models.JobTypeContract:   LabelContract,
	models.JobTypeTemporary:  LabelTemporary,
	models.JobTypeInternship: LabelInternship,
	models.JobTypeRemote:     LabelRemote,
}

// MatchesJobType reports whether a listing label satisfies the search filter.
// "all" matches everything; an unknown filter matches nothing.
func MatchesJobType(label string, f models.JobTypeFilter) bool {
	if f == models.JobTypeAll {
		return true
	}
	want, ok := filterLabels[f]
	return ok && strings.EqualFold(label, want)
}
