package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"songcrate/internal/metadata"
	"songcrate/internal/models"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Config holds ingestion behavior settings
type Config struct {
	// DefaultIdentity is the poster identity every ingestion is attributed
	// to until real user details are available.
	DefaultIdentity Identity

	// MergeGenresOnRepeatArtist controls whether a pre-existing artist
	// re-encountered with new genres gains the missing associations.
	// Off by default: genres are considered fixed at artist creation.
	MergeGenresOnRepeatArtist bool
}

// RawPost is one raw social post record as received from the feed
type RawPost struct {
	Link        string  `json:"link" binding:"required"`
	CreatedTime string  `json:"created_time"`
	Message     *string `json:"message"`
	ID          string  `json:"id"`
	Reactions   struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"reactions"`
	PermalinkURL string `json:"permalink_url"`
}

// Result reports what one ingestion produced
type Result struct {
	LinkID  uuid.UUID  `json:"link_id"`
	PostID  uuid.UUID  `json:"post_id"`
	SongID  *uuid.UUID `json:"song_id,omitempty"`
	NewLink bool       `json:"new_link"`
}

// Ingestor orchestrates one ingestion: resolve metadata, upsert the link,
// record the post, and build the song graph when the URL is first seen.
type Ingestor struct {
	db       *gorm.DB
	resolver metadata.Resolver
	scorer   *Scorer
	config   Config
	now      func() time.Time
}

// NewIngestor creates an ingestor
func NewIngestor(db *gorm.DB, resolver metadata.Resolver, scorer *Scorer, config Config) *Ingestor {
	return &Ingestor{
		db:       db,
		resolver: resolver,
		scorer:   scorer,
		config:   config,
		now:      time.Now,
	}
}

// Ingest processes one raw post. Metadata resolution happens before any
// write, so a ResolutionError leaves storage untouched; all writes run in
// one transaction and roll back together on a StorageError.
func (i *Ingestor) Ingest(ctx context.Context, raw RawPost) (*Result, error) {
	postedAt := i.parsePostedAt(raw.CreatedTime)

	caption := ""
	if raw.Message != nil {
		caption = strings.TrimSpace(*raw.Message)
	}

	meta, err := i.resolver.Resolve(ctx, raw.Link)
	if err != nil {
		return nil, err
	}

	var result Result
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		user, err := repo.GetOrCreateUser(i.config.DefaultIdentity)
		if err != nil {
			return err
		}

		link, newLink, err := repo.GetOrCreateLink(raw.Link)
		if err != nil {
			return err
		}

		post := &models.UserPost{
			UserID:         user.ID,
			LinkID:         link.ID,
			PostedAt:       postedAt,
			Caption:        caption,
			ExternalPostID: raw.ID,
			PermalinkURL:   raw.PermalinkURL,
			LikesCount:     raw.Reactions.Summary.TotalCount,
		}
		if err := repo.CreateUserPost(post); err != nil {
			return err
		}

		result = Result{LinkID: link.ID, PostID: post.ID, NewLink: newLink}
		if link.SongID != nil {
			result.SongID = link.SongID
		}

		// The song graph is built exactly once per URL, on the ingestion
		// that first observes it.
		if newLink {
			songID, err := i.buildSongGraph(repo, link, meta)
			if err != nil {
				return err
			}
			result.SongID = &songID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// parsePostedAt parses the post timestamp leniently, falling back to the
// current time. A malformed timestamp never rejects an ingestion.
func (i *Ingestor) parsePostedAt(createdTime string) time.Time {
	if createdTime == "" {
		return i.now()
	}
	t, err := dateparse.ParseAny(createdTime)
	if err != nil {
		return i.now()
	}
	return t
}

// buildSongGraph creates the song plus its artist and genre rows and join
// rows for a newly seen link
func (i *Ingestor) buildSongGraph(repo *Repository, link *models.Link, meta *metadata.TrackMetadata) (uuid.UUID, error) {
	var customPopularity *float64
	if score, err := i.scorer.Score(meta.Signals); err == nil {
		customPopularity = &score
	} else {
		// Same-day posts have no defined velocity; record the score as
		// unknown rather than failing the ingestion.
		log.Printf("no custom popularity for %s: %v", link.URL, err)
	}

	artistNames := make([]string, 0, len(meta.Artists))
	for _, a := range meta.Artists {
		artistNames = append(artistNames, a.Name)
	}

	song := &models.Song{
		Name:             meta.Track.Name,
		ReleaseDate:      metadata.ParseReleaseDate(meta.Track.Year),
		Explicit:         meta.Track.Explicit,
		Popularity:       meta.Track.Popularity,
		ImageID:          meta.Track.ImageID,
		CustomPopularity: customPopularity,
		IsCover:          meta.Track.IsCover,
		OriginalID:       meta.Track.OriginalID,
		ArtistNames:      artistNames,
	}
	if err := repo.CreateSong(song); err != nil {
		return uuid.Nil, err
	}
	if err := repo.SetLinkSong(link, song.ID); err != nil {
		return uuid.Nil, err
	}

	for _, artistMeta := range meta.Artists {
		artist, newArtist, err := repo.GetOrCreateArtist(artistMeta.Name, artistMeta.ImageID)
		if err != nil {
			return uuid.Nil, err
		}

		if newArtist {
			for _, genreName := range artistMeta.Genres {
				genre, _, err := repo.GetOrCreateGenre(genreName)
				if err != nil {
					return uuid.Nil, err
				}
				if err := repo.CreateArtistGenreLink(artist.ID, genre.ID); err != nil {
					return uuid.Nil, err
				}
			}
		} else if i.config.MergeGenresOnRepeatArtist {
			if err := i.mergeArtistGenres(repo, artist, artistMeta.Genres); err != nil {
				return uuid.Nil, err
			}
		}

		// The credit is recorded whether or not the artist already existed.
		if err := repo.CreateArtistSongLink(artist.ID, song.ID); err != nil {
			return uuid.Nil, err
		}
	}
	return song.ID, nil
}

// mergeArtistGenres adds the genre associations a known artist is missing
func (i *Ingestor) mergeArtistGenres(repo *Repository, artist *models.Artist, genres []string) error {
	for _, genreName := range genres {
		genre, _, err := repo.GetOrCreateGenre(genreName)
		if err != nil {
			return err
		}
		linked, err := repo.HasArtistGenreLink(artist.ID, genre.ID)
		if err != nil {
			return err
		}
		if !linked {
			if err := repo.CreateArtistGenreLink(artist.ID, genre.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
