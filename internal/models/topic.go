package models

// Topic is one tracked forecasting question.
type Topic struct {
	Title         string   `json:"title"`
	Question      string   `json:"question"`
	Horizon       string   `json:"horizon"`
	KeyIndicators []string `json:"key_indicators"`
}

// Clone returns a deep copy of the topic.
func (t *Topic) Clone() *Topic {
	c := *t
	c.KeyIndicators = append([]string(nil), t.KeyIndicators...)
	return &c
}
