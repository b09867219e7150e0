package scoring

// SectionAverages folds a response map into per-section averages. sectionOf
// maps a question id to its section id; a response whose question id has no
// mapping contributes nothing. Sections with no recorded responses are absent
// from the result, which callers must treat as "no data yet" rather than 0.
func SectionAverages(responses map[string]int, sectionOf map[string]string) map[string]float64 {
	type acc struct {
		sum   int
		count int
	}
	perSection := map[string]acc{}
	for questionID, score := range responses {
		sectionID, ok := sectionOf[questionID]
		if !ok {
			continue
		}
		a := perSection[sectionID]
		a.sum += score
		a.count++
		perSection[sectionID] = a
	}
	averages := make(map[string]float64, len(perSection))
	for sectionID, a := range perSection {
		averages[sectionID] = float64(a.sum) / float64(a.count)
	}
	return averages
}

// OverallAverage returns the arithmetic mean of the per-section averages.
// An empty map yields 0 so callers never render NaN before any answers exist.
func OverallAverage(sectionAverages map[string]float64) float64 {
	if len(sectionAverages) == 0 {
		return 0
	}
	total := 0.0
	for _, avg := range sectionAverages {
		total += avg
	}
	return total / float64(len(sectionAverages))
}

// Band is one entry of a classification table over the [0,5] score scale.
// Min and Max are inclusive. Action is empty for tables that do not carry a
// recommended action per level.
type Band struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Action      string  `json:"action,omitempty"`
}

// Classify returns the first band, in declared order, whose inclusive range
// contains score. Bands must be supplied ordered ascending by Min. When no
// band matches the first band is returned; the shipped tables step from 1.5
// to 1.6, so scores inside those steps land on the fallback as well.
func Classify(score float64, bands []Band) Band {
	for _, b := range bands {
		if score >= b.Min && score <= b.Max {
			return b
		}
	}
	if len(bands) == 0 {
		return Band{}
	}
	return bands[0]
}
