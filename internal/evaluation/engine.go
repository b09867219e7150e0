// Package evaluation computes the full assessment outcome from a set of
// responses: per-framework section averages, maturity and compliance bands,
// recommendations, the combined score with its interpretation, and the
// regulatory deadline countdown for the selected organization type.
package evaluation

import (
	"time"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/deadline"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/recommend"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/responses"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/scoring"
)

// Evaluate scores the given answers against both frameworks of the catalog.
// Answers for unknown questions, or with scores that are not among a
// question's declared options, are ignored. The reference time drives the
// deadline countdown and makes the result reproducible in tests.
func Evaluate(cat *catalog.Catalog, ans responses.Answers, now time.Time) Result {
	res := Result{
		ISO:        evaluateFramework(&cat.ISO, ans.Scores),
		Regulation: evaluateFramework(&cat.Regulation, ans.Scores),
	}
	res.Combined = (res.ISO.Overall + res.Regulation.Overall) / 2
	res.Status = Status{
		ISO:        statusMark(res.ISO.Overall),
		Regulation: statusMark(res.Regulation.Overall),
		Integral:   statusMark(res.Combined),
	}
	res.Interpretation = interpret(res.ISO.Overall, res.Regulation.Overall)

	if ot, ok := deadline.ForOrganization(cat.OrganizationTypes, ans.OrganizationType); ok {
		res.Deadline = &DeadlineInfo{
			OrganizationType: ot,
			Remaining:        deadline.TimeRemaining(ot.Deadline, now),
		}
	}
	return res
}

func evaluateFramework(fw *catalog.FrameworkCatalog, scores map[string]int) FrameworkResult {
	valid := make(map[string]int)
	for id, score := range scores {
		q, ok := fw.QuestionByID(id)
		if !ok || !q.HasOption(score) {
			continue
		}
		valid[id] = score
	}

	averages := scoring.SectionAverages(valid, fw.SectionOf())
	overall := scoring.OverallAverage(averages)
	return FrameworkResult{
		Framework:       fw.Framework,
		SectionAverages: averages,
		Overall:         overall,
		Band:            scoring.Classify(overall, fw.Bands),
		Recommendations: recommend.ForSections(averages, fw.Recommendations, recommend.DefaultThreshold),
		Answered:        len(valid),
		TotalQuestions:  len(fw.Questions),
	}
}

func statusMark(score float64) string {
	switch {
	case score >= 3.5:
		return MarkCumple
	case score >= 2.5:
		return MarkParcial
	default:
		return MarkNoCumple
	}
}

func interpret(iso, legal float64) string {
	switch {
	case iso >= 3.5 && legal >= 3.5:
		return "Su organización demuestra un buen nivel de cumplimiento en ambos marcos normativos. Mantenga y mejore sus prácticas actuales."
	case iso >= 2.5 && legal >= 2.5:
		return "Su organización muestra un nivel moderado de cumplimiento. Se recomienda implementar las mejoras sugeridas."
	default:
		return "Su organización requiere mejoras significativas en uno o ambos marcos normativos. Priorice las acciones recomendadas."
	}
}
