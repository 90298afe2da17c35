// Package web serves the dashboard and the JSON API mirroring the stores.
// Each request runs one load (and for updates, one save) against the store;
// no state is shared across requests beyond the files themselves.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/ports/primary"
)

// Server exposes the tracker over HTTP.
type Server struct {
	topics      primary.TopicService
	assessments primary.AssessmentService
	status      primary.StatusService
}

// NewServer creates a server over the given services.
func NewServer(topics primary.TopicService, assessments primary.AssessmentService, status primary.StatusService) *Server {
	return &Server{topics: topics, assessments: assessments, status: status}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/topics", s.handleTopics)
	mux.HandleFunc("GET /api/assessments", s.handleAssessments)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/history/{key}", s.handleTopicHistory)
	mux.HandleFunc("POST /api/assess", s.handleAssess)
	return mux
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	server := &http.Server{Addr: addr, Handler: s.Handler()}
	return server.ListenAndServe()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	report, err := s.status.GetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusView(report))
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	state, err := s.assessments.GetState(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state.Topics)
}

func (s *Server) handleAssessments(w http.ResponseWriter, r *http.Request) {
	state, err := s.assessments.GetState(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state.Assessments)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	state, err := s.assessments.GetState(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state.History)
}

func (s *Server) handleTopicHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.assessments.GetHistory(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// assessRequest is the JSON shape of an update command.
type assessRequest struct {
	Key             string            `json:"key"`
	Probability     int               `json:"probability"`
	Confidence      string            `json:"confidence"`
	Drivers         []string          `json:"drivers"`
	Uncertainties   []string          `json:"uncertainties"`
	IndicatorStatus map[string]string `json:"indicator_status"`
	Notes           string            `json:"notes"`
	Date            string            `json:"date"`
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	resp, err := s.assessments.RecordAssessment(r.Context(), primary.RecordAssessmentRequest{
		Key:             req.Key,
		Probability:     req.Probability,
		Confidence:      req.Confidence,
		Drivers:         req.Drivers,
		Uncertainties:   req.Uncertainties,
		IndicatorStatus: req.IndicatorStatus,
		Notes:           req.Notes,
		Date:            req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"key":        resp.Key,
		"assessment": resp.Assessment,
		"entry":      resp.Entry,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		code = http.StatusConflict
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
