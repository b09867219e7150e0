// Package recommend derives remediation messages for sections whose average
// score falls under a threshold.
package recommend

import "sort"

// DefaultThreshold is the score under which a section earns its
// recommendation.
const DefaultThreshold = 3.0

// ForSections returns the configured message for every section whose average
// is below threshold. Sections without a table entry are skipped. Output is
// ordered by section id so repeated evaluations of the same responses render
// the same list. An empty result means every scored section clears the bar;
// callers render that as a positive acknowledgment, not as an empty list.
func ForSections(sectionAverages map[string]float64, messages map[string]string, threshold float64) []string {
	ids := make([]string, 0, len(sectionAverages))
	for id := range sectionAverages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []string
	for _, id := range ids {
		if sectionAverages[id] >= threshold {
			continue
		}
		msg, ok := messages[id]
		if !ok {
			continue
		}
		out = append(out, msg)
	}
	return out
}
