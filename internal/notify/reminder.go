package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/example/sentinel/internal/core/status"
)

var reminderTemplate = template.Must(template.New("reminder").Parse(`<html>
<body>
<h2>Assessment Status Report - {{.Date}}</h2>
{{if .Overdue}}<h3>Overdue Assessments</h3>
<ul>
{{range .Overdue}}<li>{{.Title}} - {{if .Days}}{{.Days}} days overdue (due: {{.NextReview}}){{else}}Never assessed{{end}}</li>
{{end}}</ul>
{{end}}{{if .DueSoon}}<h3>Due Soon</h3>
<ul>
{{range .DueSoon}}<li>{{.Title}} - Due in {{.Days}} days ({{.NextReview}})</li>
{{end}}</ul>
{{end}}<p>Run <code>sentinel assess</code> to complete your assessments.</p>
</body>
</html>
`))

// ReminderSubject builds the subject line for a reminder email.
func ReminderSubject(report status.Report) string {
	return fmt.Sprintf("Assessment Tracker Reminder - %d Overdue", len(report.Overdue))
}

// ReminderBody renders the status payload as the reminder email HTML.
func ReminderBody(report status.Report) (string, error) {
	var b strings.Builder
	if err := reminderTemplate.Execute(&b, report); err != nil {
		return "", fmt.Errorf("failed to render reminder: %w", err)
	}
	return b.String(), nil
}

// ReminderMessage builds the short desktop notification text.
func ReminderMessage(report status.Report) string {
	count := len(report.Overdue) + len(report.DueSoon)
	return fmt.Sprintf("%d assessments need review: %d overdue, %d due soon",
		count, len(report.Overdue), len(report.DueSoon))
}
