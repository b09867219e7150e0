// Package responses holds the answer set of an assessment session and its
// URL query encoding, the only serialized form the system has.
package responses

import (
	"net/url"
	"strconv"
)

// OrganizationTypeParam is the reserved query parameter carrying the
// selected organization type; every other parameter name is a question id.
const OrganizationTypeParam = "organizationType"

// Answers is the response store of one session: a question-id to score map
// plus the selected organization type.
type Answers struct {
	Scores           map[string]int
	OrganizationType string
}

// ParseQuery decodes a query string into an answer set. Every parameter
// except the reserved one parses as a decimal integer; non-numeric values
// are excluded entirely, exactly as if the question were unanswered. Unknown
// question ids survive decoding and fall out later at the section join, so
// future parameters never break old readers. Repeated parameters keep the
// last value, matching sequential assignment over the raw parameter list.
func ParseQuery(q url.Values) Answers {
	ans := Answers{Scores: map[string]int{}}
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		last := values[len(values)-1]
		if key == OrganizationTypeParam {
			ans.OrganizationType = last
			continue
		}
		score, err := strconv.Atoi(last)
		if err != nil {
			continue
		}
		ans.Scores[key] = score
	}
	return ans
}

// ParseQueryString decodes a raw query string ("q1=3&organizationType=…").
func ParseQueryString(raw string) (Answers, error) {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Answers{}, err
	}
	return ParseQuery(q), nil
}

// Query serializes the answer set back to url.Values. The round trip through
// Encode and ParseQuery is lossless for scores and the organization type.
func (a Answers) Query() url.Values {
	q := url.Values{}
	for id, score := range a.Scores {
		q.Set(id, strconv.Itoa(score))
	}
	if a.OrganizationType != "" {
		q.Set(OrganizationTypeParam, a.OrganizationType)
	}
	return q
}

// Encode returns the canonical (key-sorted) query string form.
func (a Answers) Encode() string {
	return a.Query().Encode()
}
