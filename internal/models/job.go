package models

// Placeholders used when a required Job field could not be resolved.
const (
	PlaceholderTitle      = "Unknown Position"
	PlaceholderCompany    = "Unknown Company"
	PlaceholderLocation   = "Unknown Location"
	PlaceholderJobType    = "Full-time"
	PlaceholderDatePosted = "Recently posted"
	PlaceholderURL        = "#"
)

// Job is one normalized listing as returned to callers.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	DatePosted  string   `json:"datePosted"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// ScrapeResult is what a search returns on every path: cache hit, fresh
// extraction, empty extraction or synthetic fallback. Only Warning tells them apart.
type ScrapeResult struct {
	Jobs        []Job  `json:"jobs"`
	TotalCount  int    `json:"totalCount"`
	IsFromCache bool   `json:"isFromCache"`
	Warning     string `json:"warning,omitempty"`
}

// Field names the loosely-typed values a browser session may attach to a RawRecord.
type Field string

const (
	FieldTitle      Field = "title"
	FieldCompany    Field = "company"
	FieldLocation   Field = "location"
	FieldLink       Field = "link"
	FieldLogo       Field = "logo"
	FieldPostedDate Field = "postedDate"
	FieldSalary     Field = "salary"
)

// RawRecord is one listing card as captured by a browser session, before
// extraction. HTML is the card's outer markup; Fields holds values the session
// already resolved on its own. Either may be empty.
type RawRecord struct {
	HTML   string
	Fields map[Field]string
}
