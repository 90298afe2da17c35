package topic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/sentinel/internal/models"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple lowercase key", "taiwan_invasion", false},
		{"digits allowed", "crisis_2024", false},
		{"mixed case allowed", "TopicKey", false},
		{"empty key rejected", "", true},
		{"spaces rejected", "my topic", true},
		{"hyphens rejected", "my-topic", true},
		{"punctuation rejected", "topic!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, models.ErrValidation) {
				t.Errorf("error %v is not a validation error", err)
			}
		})
	}
}

func TestValidateDefinition(t *testing.T) {
	if err := ValidateDefinition("Title", "Question?"); err != nil {
		t.Errorf("valid definition rejected: %v", err)
	}
	if err := ValidateDefinition("", "Question?"); err == nil {
		t.Error("empty title accepted")
	}
	if err := ValidateDefinition("Title", ""); err == nil {
		t.Error("empty question accepted")
	}
}

func TestConfirmRemoval(t *testing.T) {
	tests := []struct {
		name    string
		confirm string
		wantErr bool
	}{
		{"exact token accepted", "DELETE", false},
		{"lowercase rejected", "delete", true},
		{"empty rejected", "", true},
		{"yes rejected", "yes", true},
		{"padded token rejected", " DELETE ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfirmRemoval(tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Errorf("ConfirmRemoval(%q) error = %v, wantErr %v", tt.confirm, err, tt.wantErr)
			}
		})
	}
}

func TestRebuildIndicatorStatus(t *testing.T) {
	prior := map[string]string{
		"kept":    "Watch",
		"removed": "Critical",
	}

	got := RebuildIndicatorStatus(prior, []string{"kept", "added"})

	want := map[string]string{
		"kept":  "Watch",
		"added": models.IndicatorStatusUnknown,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RebuildIndicatorStatus (-want +got):\n%s", diff)
	}
}
