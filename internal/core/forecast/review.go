package forecast

import (
	"strings"
	"time"
)

// Review cadences by horizon. The horizon field is free text; the cadence is
// chosen by a literal substring match, so "1 year" gets the bi-weekly cadence
// same as "6 months". This mirrors the original tool and is deliberate.
const (
	reviewCadenceShort = 7 * 24 * time.Hour
	reviewCadenceLong  = 14 * 24 * time.Hour
)

// NextReview returns the next review date for an assessment updated on asOf:
// weekly for horizons mentioning "3 month", bi-weekly otherwise.
func NextReview(horizon string, asOf time.Time) time.Time {
	if strings.Contains(horizon, "3 month") {
		return asOf.Add(reviewCadenceShort)
	}
	return asOf.Add(reviewCadenceLong)
}
