package catalog

import (
	"time"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/scoring"
)

// The two instruments evaluated by the assessment.
const (
	FrameworkISO42001 = "ISO 42001"
	FrameworkDS115    = "DS 115-2025-PCM"
)

// Priority tiers for organization-type compliance deadlines.
const (
	PriorityAlta  = "alta"
	PriorityMedia = "media"
	PriorityBaja  = "baja"
)

// Option is one of the five fixed answers of a question. Scores are 1..5 in
// the shipped content; the engine only relies on the score actually declared.
type Option struct {
	Score       int    `json:"score"`
	Label       string `json:"label"`
	Explanation string `json:"explanation,omitempty"`
}

// Question is a single assessment item. Section references a declared
// Section id; LegalReference is set only for regulation-sourced questions.
type Question struct {
	ID             string   `json:"id"`
	Section        string   `json:"section"`
	Framework      string   `json:"framework"`
	Text           string   `json:"text"`
	Description    string   `json:"description,omitempty"`
	Options        []Option `json:"options"`
	LegalReference string   `json:"legal_reference,omitempty"`
}

// HasOption reports whether score is one of the question's declared scores.
func (q Question) HasOption(score int) bool {
	for _, o := range q.Options {
		if o.Score == score {
			return true
		}
	}
	return false
}

// Section groups questions that are averaged together into one sub-score.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// OrganizationType is a selectable category carrying its legal compliance
// deadline, priority tier and the requirement list that applies to it.
type OrganizationType struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Deadline     time.Time `json:"deadline"`
	Priority     string    `json:"priority"`
	Requirements []string  `json:"requirements"`
}

// ComparisonSide describes how one framework covers a shared requirement.
type ComparisonSide struct {
	Present     bool   `json:"present"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
}

// ComparisonEntry is one row of the ISO 42001 vs. DS 115-2025-PCM
// requirement comparison table.
type ComparisonEntry struct {
	Requirement        string         `json:"requirement"`
	ISO42001           ComparisonSide `json:"iso42001"`
	PeruvianRegulation ComparisonSide `json:"peruvian_regulation"`
	Alignment          string         `json:"alignment"`
	Notes              string         `json:"notes,omitempty"`
}

// FrameworkCatalog holds everything the engine needs for one instrument:
// its sections, questions, classification bands and the per-section
// remediation messages.
type FrameworkCatalog struct {
	Framework       string            `json:"framework"`
	Sections        []Section         `json:"sections"`
	Questions       []Question        `json:"questions"`
	Bands           []scoring.Band    `json:"bands"`
	Recommendations map[string]string `json:"recommendations"`
}

// SectionOf returns the question-id to section-id join used for averaging.
func (fc FrameworkCatalog) SectionOf() map[string]string {
	m := make(map[string]string, len(fc.Questions))
	for _, q := range fc.Questions {
		m[q.ID] = q.Section
	}
	return m
}

// QuestionByID looks up a question in this framework's catalog.
func (fc FrameworkCatalog) QuestionByID(id string) (Question, bool) {
	for _, q := range fc.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// SectionByID looks up a declared section.
func (fc FrameworkCatalog) SectionByID(id string) (Section, bool) {
	for _, s := range fc.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Catalog is the full static data set of the assessment: both framework
// catalogs, the deadline table and the requirement comparison table. It is
// loaded once, validated, and never mutated; engines receive it as a
// parameter, never as an ambient global.
type Catalog struct {
	ISO               FrameworkCatalog   `json:"iso"`
	Regulation        FrameworkCatalog   `json:"regulation"`
	OrganizationTypes []OrganizationType `json:"organization_types"`
	Comparison        []ComparisonEntry  `json:"comparison"`
}

// Frameworks returns both framework catalogs in display order.
func (c *Catalog) Frameworks() []FrameworkCatalog {
	return []FrameworkCatalog{c.ISO, c.Regulation}
}

// OrganizationTypeByID looks up a deadline record; the boolean is the
// absence marker for unknown ids.
func (c *Catalog) OrganizationTypeByID(id string) (OrganizationType, bool) {
	for _, ot := range c.OrganizationTypes {
		if ot.ID == id {
			return ot, true
		}
	}
	return OrganizationType{}, false
}
