package web

import "github.com/example/sentinel/internal/core/status"

// statusItemView is one overdue or due-soon row on the wire.
type statusItemView struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Days       *int   `json:"days"`
	NextReview string `json:"next_review"`
}

// statusReportView is the /api/status payload.
type statusReportView struct {
	Date          string           `json:"date"`
	TotalTopics   int              `json:"total_topics"`
	AssessedCount int              `json:"assessed_count"`
	OverdueCount  int              `json:"overdue_count"`
	DueSoonCount  int              `json:"due_soon_count"`
	Overdue       []statusItemView `json:"overdue"`
	DueSoon       []statusItemView `json:"due_soon"`
}

func statusView(report status.Report) statusReportView {
	view := statusReportView{
		Date:          report.Date,
		TotalTopics:   report.TotalTopics,
		AssessedCount: report.AssessedCount,
		OverdueCount:  len(report.Overdue),
		DueSoonCount:  len(report.DueSoon),
		Overdue:       make([]statusItemView, len(report.Overdue)),
		DueSoon:       make([]statusItemView, len(report.DueSoon)),
	}
	for i, item := range report.Overdue {
		view.Overdue[i] = statusItemView(item)
	}
	for i, item := range report.DueSoon {
		view.DueSoon[i] = statusItemView(item)
	}
	return view
}

// riskLevel carries the display color for a probability, matching the zones
// the charts shade.
type riskLevel struct {
	Level string
	Color string
}

func riskFor(probability *int) riskLevel {
	switch {
	case probability == nil:
		return riskLevel{"Not Assessed", "#95A5A6"}
	case *probability < 10:
		return riskLevel{"Remote", "#2ECC71"}
	case *probability < 30:
		return riskLevel{"Unlikely", "#F39C12"}
	case *probability < 70:
		return riskLevel{"Even Chance", "#E67E22"}
	case *probability < 90:
		return riskLevel{"Likely", "#E74C3C"}
	}
	return riskLevel{"Highly Likely", "#C0392B"}
}
