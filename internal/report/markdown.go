package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/evaluation"
)

// Fallback shown instead of recommendations when every section of a
// framework clears the threshold.
const (
	noISORecommendations   = "¡Buen nivel de madurez ISO 42001!"
	noLegalRecommendations = "¡Buen nivel de cumplimiento legal!"
)

// BuildMarkdown renders the report as a GitHub-flavored Markdown document.
// The catalog supplies section names and the framework comparison table.
func BuildMarkdown(r Report, cat *catalog.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Reporte de Evaluación de Madurez en Gobernanza de IA\n\n")
	fmt.Fprintf(&b, "Generado: %s  \n", r.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "Identificador: `%s`\n\n", r.ReportID)

	writeFramework(&b, r.Result.ISO, &cat.ISO, noISORecommendations)
	writeFramework(&b, r.Result.Regulation, &cat.Regulation, noLegalRecommendations)
	writeCombined(&b, r.Result)
	writeDeadline(&b, r.Result.Deadline)
	writeComparison(&b, cat.Comparison)

	return b.String()
}

func writeFramework(b *strings.Builder, fr evaluation.FrameworkResult, fw *catalog.FrameworkCatalog, fallback string) {
	fmt.Fprintf(b, "## %s\n\n", fr.Framework)
	fmt.Fprintf(b, "**Puntaje general: %.1f/5** (%d de %d preguntas respondidas)\n\n",
		fr.Overall, fr.Answered, fr.TotalQuestions)
	fmt.Fprintf(b, "Nivel: **%s**. %s\n\n", fr.Band.Level, fr.Band.Description)
	if fr.Band.Action != "" {
		fmt.Fprintf(b, "Acción requerida: %s\n\n", fr.Band.Action)
	}

	if len(fr.SectionAverages) > 0 {
		fmt.Fprintf(b, "| Sección | Puntaje |\n|---|---|\n")
		for _, id := range sortedSectionIDs(fr.SectionAverages) {
			name := id
			if s, ok := fw.SectionByID(id); ok {
				name = s.Title
			}
			fmt.Fprintf(b, "| %s | %.1f |\n", name, fr.SectionAverages[id])
		}
		fmt.Fprintf(b, "\n")
	}

	fmt.Fprintf(b, "### Recomendaciones\n\n")
	if len(fr.Recommendations) == 0 {
		fmt.Fprintf(b, "%s\n\n", fallback)
		return
	}
	for _, rec := range fr.Recommendations {
		fmt.Fprintf(b, "- %s\n", rec)
	}
	fmt.Fprintf(b, "\n")
}

func writeCombined(b *strings.Builder, res evaluation.Result) {
	fmt.Fprintf(b, "## Cumplimiento Integral\n\n")
	fmt.Fprintf(b, "| Marco | Estado | Puntaje |\n|---|---|---|\n")
	fmt.Fprintf(b, "| ISO 42001 | %s | %.1f/5 |\n", res.Status.ISO, res.ISO.Overall)
	fmt.Fprintf(b, "| Legal Peruano | %s | %.1f/5 |\n", res.Status.Regulation, res.Regulation.Overall)
	fmt.Fprintf(b, "| Integral | %s | %.1f/5 |\n\n", res.Status.Integral, res.Combined)
	fmt.Fprintf(b, "%s\n\n", res.Interpretation)
}

func writeDeadline(b *strings.Builder, d *evaluation.DeadlineInfo) {
	if d == nil {
		return
	}
	fmt.Fprintf(b, "## Plazo de Adecuación\n\n")
	fmt.Fprintf(b, "Tipo de organización: **%s**  \n", d.OrganizationType.Name)
	fmt.Fprintf(b, "Fecha límite: %s  \n", d.OrganizationType.Deadline.Format("2006-01-02"))
	fmt.Fprintf(b, "Tiempo restante: **%s**\n\n", d.Remaining.Text)
	if len(d.OrganizationType.Requirements) > 0 {
		fmt.Fprintf(b, "Requisitos aplicables:\n\n")
		for _, req := range d.OrganizationType.Requirements {
			fmt.Fprintf(b, "- %s\n", req)
		}
		fmt.Fprintf(b, "\n")
	}
}

func writeComparison(b *strings.Builder, entries []catalog.ComparisonEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "## Comparación ISO 42001 vs DS 115-2025-PCM\n\n")
	fmt.Fprintf(b, "| Aspecto | ISO 42001 | DS 115-2025-PCM | Alineación |\n|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			e.Requirement, e.ISO42001.Description, e.PeruvianRegulation.Description, e.Alignment)
	}
	fmt.Fprintf(b, "\n")
}

func sortedSectionIDs(m map[string]float64) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
