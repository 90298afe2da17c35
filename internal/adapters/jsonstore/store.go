// Package jsonstore persists the tracker state as whole JSON documents:
// topics.json, assessments.json and history.json under one data directory.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/sentinel/internal/models"
)

const (
	topicsFile      = "topics.json"
	assessmentsFile = "assessments.json"
	historyFile     = "history.json"
)

// Store implements secondary.StateRepository over a data directory.
type Store struct {
	dataDir string
}

// New creates a store rooted at dataDir. The directory is created on the
// first save.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Load reads all three documents. Missing files mean first run: topics fall
// back to the default question set, assessments and history are initialized
// to match the topics. Unreadable or unparseable files are surfaced.
func (s *Store) Load(ctx context.Context) (*models.State, error) {
	state := models.NewState()

	var topics map[string]*models.Topic
	found, err := s.readDocument(topicsFile, &topics)
	if err != nil {
		return nil, err
	}
	if !found {
		topics = models.DefaultTopics()
	}
	state.Topics = topics

	var assessments map[string]*models.Assessment
	found, err = s.readDocument(assessmentsFile, &assessments)
	if err != nil {
		return nil, err
	}
	if found {
		state.Assessments = assessments
	}

	var history map[string][]models.HistoryEntry
	found, err = s.readDocument(historyFile, &history)
	if err != nil {
		return nil, err
	}
	if found {
		state.History = history
	}

	// Topics added out of band (or a fresh data dir) still get an empty
	// assessment and history list.
	for key, topic := range state.Topics {
		if _, ok := state.Assessments[key]; !ok {
			state.Assessments[key] = models.NewAssessment(topic)
		}
		if _, ok := state.History[key]; !ok {
			state.History[key] = []models.HistoryEntry{}
		}
	}

	return state, nil
}

// SaveTopics persists the topic registry.
func (s *Store) SaveTopics(ctx context.Context, topics map[string]*models.Topic) error {
	return s.writeDocument(topicsFile, topics)
}

// SaveAssessments persists current state and history in one call so the
// current-mirrors-history-tail invariant never observably breaks.
func (s *Store) SaveAssessments(ctx context.Context, assessments map[string]*models.Assessment, history map[string][]models.HistoryEntry) error {
	if err := s.writeDocument(assessmentsFile, assessments); err != nil {
		return err
	}
	return s.writeDocument(historyFile, history)
}

// SaveAll persists all three documents.
func (s *Store) SaveAll(ctx context.Context, state *models.State) error {
	if err := s.SaveTopics(ctx, state.Topics); err != nil {
		return err
	}
	return s.SaveAssessments(ctx, state.Assessments, state.History)
}

// readDocument unmarshals one store file into out. Returns false when the
// file does not exist.
func (s *Store) readDocument(name string, out any) (bool, error) {
	path := filepath.Join(s.dataDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to read %s: %v", models.ErrStore, name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: failed to parse %s: %v", models.ErrStore, name, err)
	}
	return true, nil
}

func (s *Store) writeDocument(name string, doc any) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %v", models.ErrStore, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %v", models.ErrStore, name, err)
	}

	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", models.ErrStore, name, err)
	}

	return nil
}
