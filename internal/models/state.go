package models

import "sort"

// State is the full in-memory view of the three stores. Assessments and
// history share the topic keyspace; a topic always has both entries present.
type State struct {
	Topics      map[string]*Topic
	Assessments map[string]*Assessment
	History     map[string][]HistoryEntry
}

// NewState returns an empty state with all maps initialized.
func NewState() *State {
	return &State{
		Topics:      make(map[string]*Topic),
		Assessments: make(map[string]*Assessment),
		History:     make(map[string][]HistoryEntry),
	}
}

// TopicKeys returns the topic keys in sorted order for stable output.
func (s *State) TopicKeys() []string {
	keys := make([]string, 0, len(s.Topics))
	for k := range s.Topics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
