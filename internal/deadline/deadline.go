// Package deadline computes the time left (or elapsed) against the legal
// compliance deadline of an organization type. Day counts are calendar-day
// differences; the year/month decomposition is the fixed 365/30 approximation
// the assessment has always displayed, not calendar-accurate arithmetic.
package deadline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
)

// Remaining describes the distance between a reference instant and a
// deadline. Years, Months and Days carry the sign of TotalDays, so an
// overdue deadline reports negative components, mirroring the signed total.
type Remaining struct {
	Years     int    `json:"years"`
	Months    int    `json:"months"`
	Days      int    `json:"days"`
	TotalDays int    `json:"total_days"`
	Overdue   bool   `json:"overdue"`
	Text      string `json:"text"`
}

// TimeRemaining computes the signed day count from now to deadline and its
// human-readable Spanish sentence. The reference instant is a parameter so
// results are exactly reproducible in tests.
func TimeRemaining(deadline, now time.Time) Remaining {
	diff := deadline.Sub(now)
	totalDays := int(math.Ceil(diff.Hours() / 24))

	overdue := totalDays < 0
	absolute := totalDays
	if absolute < 0 {
		absolute = -absolute
	}

	years := absolute / 365
	rest := absolute % 365
	months := rest / 30
	days := rest % 30

	text := formatSpanish(years, months, days, overdue)

	if overdue {
		years, months, days = -years, -months, -days
	}
	return Remaining{
		Years:     years,
		Months:    months,
		Days:      days,
		TotalDays: totalDays,
		Overdue:   overdue,
		Text:      text,
	}
}

// formatSpanish renders "1 año, 2 meses, 3 días restantes" or
// "Vencido hace 4 días". Zero years and months are omitted; the day count
// always renders, down to "0 días restantes".
func formatSpanish(years, months, days int, overdue bool) string {
	var b strings.Builder
	if overdue {
		b.WriteString("Vencido hace ")
	}
	if years > 0 {
		b.WriteString(fmt.Sprintf("%d %s, ", years, pluralize(years, "año", "años")))
	}
	if months > 0 {
		b.WriteString(fmt.Sprintf("%d %s, ", months, pluralize(months, "mes", "meses")))
	}
	b.WriteString(fmt.Sprintf("%d %s", days, pluralize(days, "día", "días")))
	if !overdue {
		b.WriteString(" restantes")
	}
	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// ForOrganization resolves the deadline record for an organization type id.
// Unknown ids return false rather than an error; callers render "no deadline
// selected" in that case.
func ForOrganization(types []catalog.OrganizationType, id string) (catalog.OrganizationType, bool) {
	for _, ot := range types {
		if ot.ID == id {
			return ot, true
		}
	}
	return catalog.OrganizationType{}, false
}
