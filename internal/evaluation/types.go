package evaluation

import (
	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/deadline"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/scoring"
)

// Compliance markers for the integral status row: met, partially met, unmet.
const (
	MarkCumple   = "✓"
	MarkParcial  = "⚠"
	MarkNoCumple = "✗"
)

// FrameworkResult is the scored outcome of one instrument.
type FrameworkResult struct {
	Framework       string             `json:"framework"`
	SectionAverages map[string]float64 `json:"section_averages"`
	Overall         float64            `json:"overall"`
	Band            scoring.Band       `json:"band"`
	Recommendations []string           `json:"recommendations"`
	Answered        int                `json:"answered"`
	TotalQuestions  int                `json:"total_questions"`
}

// DeadlineInfo carries the compliance-deadline block of a result; present
// only when the selected organization type exists in the deadline table.
type DeadlineInfo struct {
	OrganizationType catalog.OrganizationType `json:"organization_type"`
	Remaining        deadline.Remaining       `json:"remaining"`
}

// Status holds the three integral compliance markers.
type Status struct {
	ISO        string `json:"iso"`
	Regulation string `json:"regulation"`
	Integral   string `json:"integral"`
}

// Result is the complete computed outcome of an assessment: both framework
// results, the combined score, the integral status and interpretation, and
// the deadline block when an organization type was selected.
type Result struct {
	ISO            FrameworkResult `json:"iso"`
	Regulation     FrameworkResult `json:"regulation"`
	Combined       float64         `json:"combined"`
	Status         Status          `json:"status"`
	Interpretation string          `json:"interpretation"`
	Deadline       *DeadlineInfo   `json:"deadline,omitempty"`
}
