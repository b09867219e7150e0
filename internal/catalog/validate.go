package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// validate runs the load-time consistency checks. A question referencing an
// undeclared section is a hard error here, not a silent exclusion: the
// runtime engine still drops unmatched responses, but content typos must
// surface when the catalog is loaded, not as missing sub-scores.
func (c *Catalog) validate() error {
	var problems []string

	for _, fc := range c.Frameworks() {
		problems = append(problems, validateFramework(fc)...)
	}

	seenTypes := map[string]bool{}
	for _, ot := range c.OrganizationTypes {
		if ot.ID == "" {
			problems = append(problems, "organization type with empty id")
			continue
		}
		if seenTypes[ot.ID] {
			problems = append(problems, fmt.Sprintf("duplicate organization type id %q", ot.ID))
		}
		seenTypes[ot.ID] = true
		switch ot.Priority {
		case PriorityAlta, PriorityMedia, PriorityBaja:
		default:
			problems = append(problems, fmt.Sprintf("organization type %s: unknown priority %q", ot.ID, ot.Priority))
		}
		if ot.Deadline.IsZero() {
			problems = append(problems, fmt.Sprintf("organization type %s: missing deadline", ot.ID))
		}
	}
	if len(c.OrganizationTypes) == 0 {
		problems = append(problems, "deadline table declares no organization types")
	}

	if len(problems) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("catalog validation failed")
	for _, p := range problems {
		b.WriteString("\n- ")
		b.WriteString(p)
	}
	return errors.New(b.String())
}

func validateFramework(fc FrameworkCatalog) []string {
	var problems []string
	tag := fc.Framework
	if tag == "" {
		problems = append(problems, "framework catalog with empty framework tag")
		tag = "(unnamed)"
	}

	sections := map[string]bool{}
	for _, s := range fc.Sections {
		if s.ID == "" {
			problems = append(problems, fmt.Sprintf("%s: section with empty id", tag))
			continue
		}
		if sections[s.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate section id %q", tag, s.ID))
		}
		sections[s.ID] = true
	}

	questionIDs := map[string]bool{}
	for _, q := range fc.Questions {
		if q.ID == "" {
			problems = append(problems, fmt.Sprintf("%s: question with empty id", tag))
			continue
		}
		if questionIDs[q.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate question id %q", tag, q.ID))
		}
		questionIDs[q.ID] = true
		if !sections[q.Section] {
			problems = append(problems, fmt.Sprintf("%s: question %s references undeclared section %q", tag, q.ID, q.Section))
		}
		problems = append(problems, validateOptions(tag, q)...)
	}

	if len(fc.Bands) == 0 {
		problems = append(problems, fmt.Sprintf("%s: empty band table", tag))
	}
	for i, b := range fc.Bands {
		if b.Min > b.Max {
			problems = append(problems, fmt.Sprintf("%s: band %q has min %v above max %v", tag, b.Level, b.Min, b.Max))
		}
		if i > 0 && b.Min <= fc.Bands[i-1].Min {
			problems = append(problems, fmt.Sprintf("%s: band table not ascending at %q", tag, b.Level))
		}
	}

	for sectionID := range fc.Recommendations {
		if !sections[sectionID] {
			problems = append(problems, fmt.Sprintf("%s: recommendation keyed by undeclared section %q", tag, sectionID))
		}
	}
	return problems
}

func validateOptions(tag string, q Question) []string {
	var problems []string
	if len(q.Options) != 5 {
		problems = append(problems, fmt.Sprintf("%s: question %s declares %d options, want 5", tag, q.ID, len(q.Options)))
	}
	seen := map[int]bool{}
	for _, o := range q.Options {
		if o.Score < 1 || o.Score > 5 {
			problems = append(problems, fmt.Sprintf("%s: question %s option score %d outside 1..5", tag, q.ID, o.Score))
		}
		if seen[o.Score] {
			problems = append(problems, fmt.Sprintf("%s: question %s duplicate option score %d", tag, q.ID, o.Score))
		}
		seen[o.Score] = true
		if strings.TrimSpace(o.Label) == "" {
			problems = append(problems, fmt.Sprintf("%s: question %s option %d has empty label", tag, q.ID, o.Score))
		}
	}
	return problems
}
