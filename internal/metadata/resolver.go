// Package metadata resolves a media URL to descriptive track metadata via
// an external lookup service.
package metadata

import (
	"context"
	"fmt"
	"time"
)

// TrackMetadata is the full resolution result for one media URL
type TrackMetadata struct {
	Track   Track
	Artists []ArtistMetadata
	Signals Signals
}

// Track describes the resolved track itself
type Track struct {
	Name       string
	Year       string // release date string, full date or bare year
	Explicit   bool
	Popularity float64
	ImageID    string
	IsCover    bool
	OriginalID *string // external id of the original track when IsCover
}

// ArtistMetadata describes one credited artist
type ArtistMetadata struct {
	Name    string
	ImageID string
	Genres  []string
}

// Signals carries the auxiliary engagement signals used for derived scores
type Signals struct {
	Views    int64
	PostedAt time.Time
}

// Resolver resolves a media URL to track metadata. Implementations have no
// side effects on the catalog.
type Resolver interface {
	Resolve(ctx context.Context, url string) (*TrackMetadata, error)
}

// ResolutionError indicates the lookup service could not resolve a URL.
// No catalog writes happen for an ingestion that hits one.
type ResolutionError struct {
	URL string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve metadata for %s: %v", e.URL, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ParseReleaseDate parses a release date string from the lookup service.
// Tries a full date first, then a bare year. Returns nil when neither
// matches; a malformed release date never fails an ingestion.
func ParseReleaseDate(s string) *time.Time {
	for _, layout := range []string{"2006-01-02", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
