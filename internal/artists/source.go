// Package artists fetches the current user's ranked top artists.
package artists

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/showfinder/internal/upstream"
	"github.com/jfmyers9/showfinder/pkg/spotify"
)

// Artist is one of the user's top artists.
type Artist struct {
	Name string
	Rank int // 1-based position in the provider's ranking
}

// TopArtistsLister returns one page of top artists. *spotify.MeService
// implements it.
type TopArtistsLister interface {
	TopArtists(ctx context.Context, opts spotify.TopArtistsOptions) (*spotify.ArtistPage, error)
}

// Source wraps the music provider's top-artists endpoint
type Source struct {
	lister     TopArtistsLister
	timeRange  spotify.TimeRange
	exclusions Exclusions
	logger     zerolog.Logger
}

// NewSource creates a Source. An empty timeRange uses the provider default.
func NewSource(lister TopArtistsLister, timeRange spotify.TimeRange, exclusions Exclusions, logger zerolog.Logger) *Source {
	return &Source{
		lister:     lister,
		timeRange:  timeRange,
		exclusions: exclusions,
		logger:     logger.With().Str("component", "artists").Logger(),
	}
}

// FetchTopArtists returns up to limit top artists, most listened-to first,
// with excluded names removed. Pages are requested until limit artists
// were read or the provider runs out. Any failed page fails the whole
// call: a partial list would silently under-report concerts.
func (s *Source) FetchTopArtists(ctx context.Context, limit int) ([]Artist, error) {
	if limit <= 0 {
		return nil, nil
	}

	var fetched []Artist
	for len(fetched) < limit {
		size := limit - len(fetched)
		if size > spotify.MaxPageSize {
			size = spotify.MaxPageSize
		}

		page, err := s.lister.TopArtists(ctx, spotify.TopArtistsOptions{
			Limit:     size,
			Offset:    len(fetched),
			TimeRange: s.timeRange,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch top artists at offset %d: %w", len(fetched), upstream.Classify(err))
		}
		if page == nil {
			break
		}

		for _, item := range page.Items {
			fetched = append(fetched, Artist{Name: item.Name, Rank: len(fetched) + 1})
		}

		s.logger.Debug().
			Int("offset", page.Offset).
			Int("count", len(page.Items)).
			Int("total", page.Total).
			Msg("Fetched top artists page")

		// Short page or end of the listing
		if len(page.Items) < size || (page.Total > 0 && len(fetched) >= page.Total) {
			break
		}
	}

	if len(fetched) > limit {
		fetched = fetched[:limit]
	}

	filtered := s.exclusions.Filter(fetched)
	if dropped := len(fetched) - len(filtered); dropped > 0 {
		s.logger.Debug().Int("excluded", dropped).Msg("Dropped excluded artists")
	}
	return filtered, nil
}
