package extract

import "go-jobscout/internal/models"

// selector reads either the text of the first match (attr == "") or one of
// its attributes.
type selector struct {
	css  string
	attr string
}

// fieldSelectors lists, per field, the selectors tried in order against a
// card's markup. The search page ships several card variants, so no single
// selector is reliable.
var fieldSelectors = map[models.Field][]selector{
	models.FieldTitle: {
		{css: ".base-search-card__title"},
		{css: ".job-search-card__title"},
		{css: "a.job-card-list__title"},
		{css: "h3"},
	},
	models.FieldCompany: {
		{css: ".base-search-card__subtitle a"},
		{css: ".base-search-card__subtitle"},
		{css: ".job-search-card__company-name"},
		{css: "h4"},
	},
	models.FieldLocation: {
		{css: ".job-search-card__location"},
		{css: ".base-search-card__metadata [class*=location]"},
		{css: "[class*=location]"},
	},
	models.FieldLink: {
		{css: "a.base-card__full-link", attr: "href"},
		{css: "a[href*='/jobs/view/']", attr: "href"},
		{css: "a[href]", attr: "href"},
	},
	models.FieldLogo: {
		{css: "img.artdeco-entity-image", attr: "data-delayed-url"},
		{css: "img[data-delayed-url]", attr: "data-delayed-url"},
		{css: "img[src]", attr: "src"},
	},
	models.FieldPostedDate: {
		{css: "time.job-search-card__listdate--new"},
		{css: "time.job-search-card__listdate"},
		{css: "time"},
		{css: "time[datetime]", attr: "datetime"},
	},
	models.FieldSalary: {
		{css: ".job-search-card__salary-info"},
		{css: "[class*=salary]"},
	},
}

// snippetSelectors feed the description when the card carries a teaser.
var snippetSelectors = []selector{
	{css: ".job-search-card__snippet"},
	{css: ".base-search-card__snippet"},
}

// skillSets are the tag sets handed out by assignSkills.
var skillSets = [][]string{
	{"Communication", "Teamwork", "Problem Solving"},
	{"Go", "Docker", "Kubernetes", "PostgreSQL"},
	{"JavaScript", "React", "TypeScript", "Node.js"},
	{"Python", "SQL", "Data Analysis"},
	{"Project Management", "Agile", "Stakeholder Management"},
}
