package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/jfmyers9/showfinder/internal/artists"
	"github.com/jfmyers9/showfinder/internal/concerts"
	"github.com/jfmyers9/showfinder/internal/config"
	"github.com/jfmyers9/showfinder/internal/events"
	"github.com/jfmyers9/showfinder/pkg/spotify"
)

// addSearchFlags registers the flags shared by commands that run a search.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("city", "", "City to search near (overrides config)")
	cmd.Flags().String("state", "", "State or region code, e.g. NY (overrides config)")
	cmd.Flags().String("provider", "", "Events provider: ticketmaster or songkick (overrides config)")
	cmd.Flags().IntP("limit", "n", 0, "Number of top artists to look up (overrides config)")
	cmd.Flags().String("time-range", "", "Spotify time range: short_term, medium_term or long_term (overrides config)")
}

// applySearchFlags copies any search flags that were set onto cfg.
func applySearchFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("city") {
		cfg.Location.City, _ = flags.GetString("city")
		// A state from the config file rarely belongs to another city
		cfg.Location.StateCode = ""
	}
	if flags.Changed("state") {
		cfg.Location.StateCode, _ = flags.GetString("state")
	}
	if flags.Changed("provider") {
		provider, _ := flags.GetString("provider")
		cfg.Events.Provider = strings.ToLower(strings.TrimSpace(provider))
	}
	if flags.Changed("limit") {
		cfg.Artists.Limit, _ = flags.GetInt("limit")
	}
	if flags.Changed("time-range") {
		cfg.Artists.TimeRange, _ = flags.GetString("time-range")
	}
}

// loadSearchConfig loads the configuration for a search and applies flag
// overrides.
func loadSearchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applySearchFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSpotifyClient builds a Spotify client that refreshes its access token
// from the stored refresh token.
func newSpotifyClient(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*spotify.Client, error) {
	if cfg.Spotify.RefreshToken == "" {
		return nil, fmt.Errorf("Spotify is not connected. Run 'showfinder auth' first")
	}

	oauthCfg := spotify.OAuthConfig(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.RedirectURI)
	if cfg.Spotify.TokenURL != "" {
		oauthCfg.Endpoint.TokenURL = cfg.Spotify.TokenURL
	}
	httpClient := oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.Spotify.RefreshToken})

	return spotify.NewClient(spotify.Config{
		HTTPClient: httpClient,
		BaseURL:    cfg.Spotify.BaseURL,
		Logger:     debugLogger{logger: logger.With().Str("client", "spotify").Logger()},
	})
}

// newArtistSource builds the top-artist source described by cfg.
func newArtistSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*artists.Source, error) {
	timeRange := spotify.TimeRange(cfg.Artists.TimeRange)
	if !timeRange.Valid() {
		return nil, fmt.Errorf("invalid artists.time_range %q (want short_term, medium_term or long_term)", cfg.Artists.TimeRange)
	}

	client, err := newSpotifyClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify client: %w", err)
	}

	return artists.NewSource(client.Me(), timeRange, artists.NewExclusions(cfg.Artists.Exclude), logger), nil
}

// newPipeline wires the artist source and events provider into a concert
// search.
func newPipeline(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*concerts.Pipeline, events.Location, error) {
	loc := events.LocationFromConfig(cfg.Location)

	source, err := newArtistSource(ctx, cfg, logger)
	if err != nil {
		return nil, loc, err
	}

	provider, err := events.New(cfg, nil, debugLogger{logger: logger.With().Str("client", cfg.Events.Provider).Logger()})
	if err != nil {
		return nil, loc, fmt.Errorf("failed to create events provider: %w", err)
	}

	pipeline := concerts.NewPipeline(source, provider, concerts.Options{
		ArtistLimit:   cfg.Artists.Limit,
		Location:      loc,
		Concurrency:   cfg.Events.Concurrency,
		RatePerSecond: cfg.Events.RatePerSecond,
	}, logger)

	return pipeline, loc, nil
}
