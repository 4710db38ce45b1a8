package catalog

import (
	"testing"
	"time"

	"songcrate/internal/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedScorer(now time.Time) *Scorer {
	return &Scorer{now: func() time.Time { return now }}
}

func TestScorer_Score(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer := fixedScorer(now)

	t.Run("ten day old post", func(t *testing.T) {
		score, err := scorer.Score(metadata.Signals{
			Views:    864000,
			PostedAt: now.AddDate(0, 0, -10),
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("age truncates to whole days", func(t *testing.T) {
		score, err := scorer.Score(metadata.Signals{
			Views:    86400,
			PostedAt: now.Add(-36 * time.Hour), // 1.5 days
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("same day post is an error", func(t *testing.T) {
		_, err := scorer.Score(metadata.Signals{
			Views:    1000,
			PostedAt: now.Add(-2 * time.Hour),
		})
		var scoringErr *ScoringError
		require.ErrorAs(t, err, &scoringErr)
	})

	t.Run("future posted date is an error", func(t *testing.T) {
		_, err := scorer.Score(metadata.Signals{
			Views:    1000,
			PostedAt: now.Add(24 * time.Hour),
		})
		var scoringErr *ScoringError
		require.ErrorAs(t, err, &scoringErr)
	})

	t.Run("zero views is a valid zero score", func(t *testing.T) {
		score, err := scorer.Score(metadata.Signals{
			Views:    0,
			PostedAt: now.AddDate(0, 0, -3),
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})
}
