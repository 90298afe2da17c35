package models

// Confidence levels accepted on an assessment update.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// IndicatorStatusUnknown is the initial status for every indicator.
const IndicatorStatusUnknown = "Unknown"

// DateFormat is the wire format for all dates in the stores.
const DateFormat = "2006-01-02"

// Assessment is the current forecast state for a topic. Title, question and
// horizon are denormalized from the topic for read convenience. Nil pointer
// fields serialize as JSON null and mean "not yet assessed".
type Assessment struct {
	Title              string            `json:"title"`
	Question           string            `json:"question"`
	Horizon            string            `json:"horizon"`
	CurrentProbability *int              `json:"current_probability"`
	CurrentDescriptor  *string           `json:"current_descriptor"`
	Confidence         *string           `json:"confidence"`
	KeyDrivers         []string          `json:"key_drivers"`
	KeyUncertainties   []string          `json:"key_uncertainties"`
	IndicatorStatus    map[string]string `json:"indicator_status"`
	LastUpdated        *string           `json:"last_updated"`
	NextReview         *string           `json:"next_review"`
	Notes              string            `json:"notes"`
}

// NewAssessment returns the empty assessment created alongside a topic:
// no probability, every indicator Unknown.
func NewAssessment(topic *Topic) *Assessment {
	status := make(map[string]string, len(topic.KeyIndicators))
	for _, ind := range topic.KeyIndicators {
		status[ind] = IndicatorStatusUnknown
	}
	return &Assessment{
		Title:            topic.Title,
		Question:         topic.Question,
		Horizon:          topic.Horizon,
		KeyDrivers:       []string{},
		KeyUncertainties: []string{},
		IndicatorStatus:  status,
	}
}

// Assessed reports whether the topic has ever been assessed.
func (a *Assessment) Assessed() bool {
	return a.CurrentProbability != nil
}

// Clone returns a deep copy of the assessment.
func (a *Assessment) Clone() *Assessment {
	c := *a
	c.CurrentProbability = cloneInt(a.CurrentProbability)
	c.CurrentDescriptor = cloneString(a.CurrentDescriptor)
	c.Confidence = cloneString(a.Confidence)
	c.LastUpdated = cloneString(a.LastUpdated)
	c.NextReview = cloneString(a.NextReview)
	c.KeyDrivers = append([]string(nil), a.KeyDrivers...)
	c.KeyUncertainties = append([]string(nil), a.KeyUncertainties...)
	c.IndicatorStatus = make(map[string]string, len(a.IndicatorStatus))
	for k, v := range a.IndicatorStatus {
		c.IndicatorStatus[k] = v
	}
	return &c
}

// HistoryEntry is one immutable snapshot of an assessment update.
// Change is the signed delta from the previous entry, nil for the first.
type HistoryEntry struct {
	Date          string   `json:"date"`
	Probability   int      `json:"probability"`
	Descriptor    string   `json:"descriptor"`
	Confidence    string   `json:"confidence"`
	Change        *int     `json:"change"`
	Drivers       []string `json:"drivers"`
	Uncertainties []string `json:"uncertainties"`
	Notes         string   `json:"notes"`
}

// ValidConfidence reports whether s is one of the accepted confidence levels.
func ValidConfidence(s string) bool {
	switch s {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
