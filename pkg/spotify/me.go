package spotify

import (
	"context"
	"net/url"
	"strconv"
)

// MeService provides operations on the current user's profile.
type MeService struct {
	client *Client
}

const (
	// MaxPageSize is the largest page Spotify serves for top items.
	MaxPageSize = 50
)

// TopArtistsOptions controls a single top-artists request.
type TopArtistsOptions struct {
	Limit     int       // 1..MaxPageSize; 0 means MaxPageSize
	Offset    int       // Index of the first item to return
	TimeRange TimeRange // Optional; Spotify defaults to MediumTerm
}

// TopArtists returns one page of the current user's top artists, most
// listened-to first.
//
// Requires the user-top-read scope.
//
// Example:
//
//	page, err := client.Me().TopArtists(ctx, spotify.TopArtistsOptions{Limit: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range page.Items {
//	    fmt.Println(a.Name)
//	}
func (s *MeService) TopArtists(ctx context.Context, opts TopArtistsOptions) (*ArtistPage, error) {
	limit := opts.Limit
	if limit == 0 {
		limit = MaxPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, ErrInvalidLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.TimeRange != "" {
		query.Set("time_range", string(opts.TimeRange))
	}

	var page ArtistPage
	if err := s.client.get(ctx, "/me/top/artists", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
