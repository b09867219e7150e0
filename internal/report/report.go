// Package report builds and persists the deliverables of an assessment:
// the JSON report, its Markdown rendering, the HTML export, and the
// JSON-lines run log.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/evaluation"
)

// Report is the envelope written to disk and served over HTTP. ReportID
// makes each generated document traceable in the run log.
type Report struct {
	ReportID    string            `json:"report_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Tool        string            `json:"tool"`
	Result      evaluation.Result `json:"result"`
}

const toolName = "iso-42001-eval-madurez"

// New wraps an evaluation result into a report envelope with a fresh id.
func New(result evaluation.Result, now time.Time) Report {
	return Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: now.UTC(),
		Tool:        toolName,
		Result:      result,
	}
}
