// Package status derives review scheduling and report summaries from the
// assessment stores. All functions are pure over the state plus a date.
package status

import (
	"sort"
	"time"

	"github.com/example/sentinel/internal/models"
)

// DueSoonWindowDays is the lookahead for the due-soon classification.
const DueSoonWindowDays = 3

// Item is one overdue or due-soon topic. Days is the day count relevant to
// the list it appears in (days overdue, or days until review); nil for topics
// never assessed, which have no review date to count from.
type Item struct {
	Key        string
	Title      string
	Days       *int
	NextReview string
}

// Report is the outcome of a status computation.
type Report struct {
	Date          string
	TotalTopics   int
	AssessedCount int
	Overdue       []Item
	DueSoon       []Item
}

// Compute classifies every assessment against today. Topics never assessed
// count as overdue with no day count. A review date equal to today is due
// soon with zero days, never overdue.
func Compute(assessments map[string]*models.Assessment, today time.Time) Report {
	report := Report{
		Date:        today.Format(models.DateFormat),
		TotalTopics: len(assessments),
		Overdue:     []Item{},
		DueSoon:     []Item{},
	}

	day := truncateToDay(today)
	for _, key := range sortedKeys(assessments) {
		assessment := assessments[key]
		if assessment.Assessed() {
			report.AssessedCount++
		}

		if assessment.NextReview == nil {
			report.Overdue = append(report.Overdue, Item{
				Key:        key,
				Title:      assessment.Title,
				NextReview: "Never",
			})
			continue
		}

		next, err := time.Parse(models.DateFormat, *assessment.NextReview)
		if err != nil {
			// Unparseable review dates are treated as never reviewed.
			report.Overdue = append(report.Overdue, Item{
				Key:        key,
				Title:      assessment.Title,
				NextReview: "Never",
			})
			continue
		}

		diff := int(next.Sub(day).Hours() / 24)
		switch {
		case diff < 0:
			days := -diff
			report.Overdue = append(report.Overdue, Item{
				Key:        key,
				Title:      assessment.Title,
				Days:       &days,
				NextReview: *assessment.NextReview,
			})
		case diff <= DueSoonWindowDays:
			days := diff
			report.DueSoon = append(report.DueSoon, Item{
				Key:        key,
				Title:      assessment.Title,
				Days:       &days,
				NextReview: *assessment.NextReview,
			})
		}
	}

	return report
}

// NeedsAttention reports whether anything is overdue or coming due.
func (r Report) NeedsAttention() bool {
	return len(r.Overdue) > 0 || len(r.DueSoon) > 0
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedKeys(assessments map[string]*models.Assessment) []string {
	keys := make([]string, 0, len(assessments))
	for k := range assessments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
