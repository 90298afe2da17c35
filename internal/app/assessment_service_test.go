package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/ports/primary"
)

func seededAssessmentService(repo *mockStateRepository) *AssessmentServiceImpl {
	repo.seedTopic("crisis", &models.Topic{
		Title:         "Crisis Topic",
		Question:      "Will it escalate?",
		Horizon:       "3 months",
		KeyIndicators: []string{"Troop movements"},
	})
	return NewAssessmentService(repo, fixedNow("2024-05-01"))
}

func TestRecordAssessment(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)

	resp, err := service.RecordAssessment(context.Background(), primary.RecordAssessmentRequest{
		Key:         "crisis",
		Probability: 25,
		Confidence:  models.ConfidenceHigh,
		Drivers:     []string{"border buildup"},
		Notes:       "initial read",
	})
	if err != nil {
		t.Fatalf("RecordAssessment() error = %v", err)
	}

	if resp.Entry.Probability != 25 || resp.Entry.Change != nil {
		t.Errorf("entry = %+v, want probability 25 with nil change", resp.Entry)
	}
	if resp.Entry.Date != "2024-05-01" {
		t.Errorf("entry date = %q, want injected clock date", resp.Entry.Date)
	}
	if resp.Assessment.NextReview == nil || *resp.Assessment.NextReview != "2024-05-08" {
		t.Errorf("next review = %v, want 2024-05-08", resp.Assessment.NextReview)
	}
	if repo.savedAssessments != 1 {
		t.Errorf("savedAssessments = %d, want 1", repo.savedAssessments)
	}
	if len(repo.state.History["crisis"]) != 1 {
		t.Errorf("history length = %d, want 1", len(repo.state.History["crisis"]))
	}
}

func TestRecordAssessmentAppendsHistory(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)
	ctx := context.Background()

	for i, p := range []int{20, 35, 30} {
		if _, err := service.RecordAssessment(ctx, primary.RecordAssessmentRequest{Key: "crisis", Probability: p}); err != nil {
			t.Fatalf("update %d: %v", i+1, err)
		}
	}

	history := repo.state.History["crisis"]
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[1].Change == nil || *history[1].Change != 15 {
		t.Errorf("second change = %v, want +15", history[1].Change)
	}
	if history[2].Change == nil || *history[2].Change != -5 {
		t.Errorf("third change = %v, want -5", history[2].Change)
	}

	// Current state mirrors the history tail.
	current := repo.state.Assessments["crisis"]
	tail := history[2]
	if *current.CurrentProbability != tail.Probability {
		t.Errorf("current probability %d does not mirror tail %d", *current.CurrentProbability, tail.Probability)
	}
	if *current.CurrentDescriptor != tail.Descriptor {
		t.Errorf("current descriptor %q does not mirror tail %q", *current.CurrentDescriptor, tail.Descriptor)
	}
}

func TestRecordAssessmentValidation(t *testing.T) {
	tests := []struct {
		name string
		req  primary.RecordAssessmentRequest
	}{
		{"probability out of range", primary.RecordAssessmentRequest{Key: "crisis", Probability: 150}},
		{"probability zero", primary.RecordAssessmentRequest{Key: "crisis", Probability: 0}},
		{"bad confidence", primary.RecordAssessmentRequest{Key: "crisis", Probability: 50, Confidence: "Extreme"}},
		{"malformed date", primary.RecordAssessmentRequest{Key: "crisis", Probability: 50, Date: "01/05/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepository()
			service := seededAssessmentService(repo)

			_, err := service.RecordAssessment(context.Background(), tt.req)

			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("error = %v, want validation error", err)
			}
			if repo.savedAssessments != 0 {
				t.Error("state saved despite validation failure")
			}
			if len(repo.state.History["crisis"]) != 0 {
				t.Error("history grew despite validation failure")
			}
		})
	}
}

func TestRecordAssessmentUnknownTopic(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)

	_, err := service.RecordAssessment(context.Background(), primary.RecordAssessmentRequest{
		Key: "missing", Probability: 50,
	})

	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestRecordAssessmentExplicitDate(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)

	resp, err := service.RecordAssessment(context.Background(), primary.RecordAssessmentRequest{
		Key: "crisis", Probability: 50, Date: "2024-02-10",
	})
	if err != nil {
		t.Fatalf("RecordAssessment() error = %v", err)
	}
	if resp.Entry.Date != "2024-02-10" {
		t.Errorf("entry date = %q, want explicit 2024-02-10", resp.Entry.Date)
	}
	if resp.Assessment.NextReview == nil || *resp.Assessment.NextReview != "2024-02-17" {
		t.Errorf("next review = %v, want 2024-02-17", resp.Assessment.NextReview)
	}
}

func TestGetHistoryReturnsCopy(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)
	ctx := context.Background()

	if _, err := service.RecordAssessment(ctx, primary.RecordAssessmentRequest{Key: "crisis", Probability: 40}); err != nil {
		t.Fatalf("RecordAssessment() error = %v", err)
	}

	history, err := service.GetHistory(ctx, "crisis")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}

	history[0].Notes = "mutated"
	fresh, _ := service.GetHistory(ctx, "crisis")
	if fresh[0].Notes == "mutated" {
		t.Error("returned history aliases the stored slice")
	}
}

func TestGetAssessmentClone(t *testing.T) {
	repo := newMockRepository()
	service := seededAssessmentService(repo)
	ctx := context.Background()

	if _, err := service.RecordAssessment(ctx, primary.RecordAssessmentRequest{Key: "crisis", Probability: 40}); err != nil {
		t.Fatalf("RecordAssessment() error = %v", err)
	}

	first, err := service.GetAssessment(ctx, "crisis")
	if err != nil {
		t.Fatalf("GetAssessment() error = %v", err)
	}
	*first.CurrentProbability = 99
	first.IndicatorStatus["Troop movements"] = "Critical"

	second, _ := service.GetAssessment(ctx, "crisis")
	if *second.CurrentProbability != 40 {
		t.Error("returned assessment aliases the stored record")
	}
	if second.IndicatorStatus["Troop movements"] != models.IndicatorStatusUnknown {
		t.Error("returned indicator map aliases the stored map")
	}
	if diff := cmp.Diff(repo.state.History["crisis"][0].Probability, 40); diff != "" {
		t.Errorf("stored history changed:\n%s", diff)
	}
}
