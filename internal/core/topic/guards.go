// Package topic contains the pure business rules for topic registry
// operations. Guards evaluate preconditions without touching storage.
package topic

import (
	"fmt"
	"regexp"

	"github.com/example/sentinel/internal/models"
)

// ConfirmToken is the literal a caller must supply to remove a topic.
const ConfirmToken = "DELETE"

// DefaultHorizon is used when a new topic is created without one.
const DefaultHorizon = "3 months"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateKey checks topic key syntax: non-empty, alphanumeric or underscore.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: topic key is required", models.ErrValidation)
	}
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: topic key %q may only contain letters, digits and underscores", models.ErrValidation, key)
	}
	return nil
}

// ValidateDefinition checks the required free-text fields of a topic.
func ValidateDefinition(title, question string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if question == "" {
		return fmt.Errorf("%w: question is required", models.ErrValidation)
	}
	return nil
}

// ConfirmRemoval checks the removal confirmation token. Anything but the
// exact literal leaves the stores untouched.
func ConfirmRemoval(confirm string) error {
	if confirm != ConfirmToken {
		return fmt.Errorf("%w: removal requires confirmation token %q", models.ErrValidation, ConfirmToken)
	}
	return nil
}

// RebuildIndicatorStatus builds the status map for a replaced indicator list:
// indicators present before and after keep their status, new ones start
// Unknown, removed ones are dropped.
func RebuildIndicatorStatus(prior map[string]string, indicators []string) map[string]string {
	rebuilt := make(map[string]string, len(indicators))
	for _, ind := range indicators {
		if status, ok := prior[ind]; ok {
			rebuilt[ind] = status
			continue
		}
		rebuilt[ind] = models.IndicatorStatusUnknown
	}
	return rebuilt
}
