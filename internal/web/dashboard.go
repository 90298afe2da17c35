package web

import (
	"html/template"
	"net/http"
)

type dashboardCard struct {
	Key         string
	Title       string
	Question    string
	Probability *int
	Descriptor  string
	Confidence  string
	LastUpdated string
	NextReview  string
	Risk        riskLevel
}

type dashboardData struct {
	Status statusReportView
	Cards  []dashboardCard
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Assessment Tracker</title>
<style>
body { font-family: -apple-system, Helvetica, Arial, sans-serif; margin: 2rem; background: #f5f6fa; color: #2d3436; }
h1 { margin-bottom: 0.25rem; }
.meta { color: #636e72; margin-bottom: 1.5rem; }
.banner { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.stat { background: #fff; border-radius: 8px; padding: 1rem 1.5rem; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.stat .value { font-size: 1.8rem; font-weight: bold; }
.stat .label { color: #636e72; font-size: 0.85rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1rem; }
.card { background: #fff; border-radius: 8px; padding: 1.25rem; box-shadow: 0 1px 3px rgba(0,0,0,0.1); border-left: 6px solid #95A5A6; }
.card h3 { margin: 0 0 0.5rem; }
.card .question { color: #636e72; font-size: 0.9rem; margin-bottom: 0.75rem; }
.card .prob { font-size: 1.6rem; font-weight: bold; }
.card .detail { font-size: 0.85rem; color: #636e72; margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>Assessment Tracker</h1>
<div class="meta">{{.Status.Date}} &middot; {{.Status.AssessedCount}}/{{.Status.TotalTopics}} assessed</div>
<div class="banner">
<div class="stat"><div class="value">{{.Status.TotalTopics}}</div><div class="label">Topics</div></div>
<div class="stat"><div class="value">{{.Status.OverdueCount}}</div><div class="label">Overdue</div></div>
<div class="stat"><div class="value">{{.Status.DueSoonCount}}</div><div class="label">Due Soon</div></div>
</div>
<div class="cards">
{{range .Cards}}<div class="card" style="border-left-color: {{.Risk.Color}}">
<h3>{{.Title}}</h3>
<div class="question">{{.Question}}</div>
{{if .Probability}}<div class="prob" style="color: {{.Risk.Color}}">{{.Probability}}%</div>
<div class="detail">{{.Descriptor}} &middot; Confidence: {{.Confidence}}</div>
<div class="detail">Updated {{.LastUpdated}} &middot; Next review {{.NextReview}}</div>
{{else}}<div class="detail">Not yet assessed</div>
{{end}}</div>
{{end}}</div>
</body>
</html>
`))

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	state, err := s.assessments.GetState(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := s.status.GetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data := dashboardData{Status: statusView(report)}
	for _, key := range state.TopicKeys() {
		assessment, ok := state.Assessments[key]
		if !ok {
			continue
		}
		card := dashboardCard{
			Key:         key,
			Title:       assessment.Title,
			Question:    assessment.Question,
			Probability: assessment.CurrentProbability,
			Risk:        riskFor(assessment.CurrentProbability),
		}
		if assessment.CurrentDescriptor != nil {
			card.Descriptor = *assessment.CurrentDescriptor
		}
		if assessment.Confidence != nil {
			card.Confidence = *assessment.Confidence
		}
		if assessment.LastUpdated != nil {
			card.LastUpdated = *assessment.LastUpdated
		}
		if assessment.NextReview != nil {
			card.NextReview = *assessment.NextReview
		}
		data.Cards = append(data.Cards, card)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
