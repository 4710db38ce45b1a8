package catalog

import (
	"time"

	"songcrate/internal/metadata"
)

const secondsPerDay = 24 * 60 * 60

// Scorer derives a custom popularity metric from the engagement signals the
// resolver returns: views divided by the post's age in seconds, measured in
// whole days. The result is a per-second view velocity.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer using wall-clock time
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score computes the custom popularity for the given signals. A post less
// than one whole day old has an undefined score and returns a ScoringError;
// the age denominator would be zero and an infinite velocity must never be
// stored.
func (s *Scorer) Score(signals metadata.Signals) (float64, error) {
	ageDays := int(s.now().Sub(signals.PostedAt).Hours() / 24)
	if ageDays <= 0 {
		return 0, &ScoringError{Reason: "post is less than one day old"}
	}
	return float64(signals.Views) / float64(ageDays*secondsPerDay), nil
}
