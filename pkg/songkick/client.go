// Package songkick provides a client for the Songkick API 3.0.
//
// Songkick is artist-centric: an artist name is first resolved to a
// Songkick ID with Artists().Search, and the artist's upcoming events are
// then read with Artists().Calendar.
//
// Example usage:
//
//	client, err := songkick.NewClient(songkick.Config{APIKey: "your-api-key"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artists, err := client.Artists().Search(ctx, "Radiohead")
//	if err != nil || len(artists) == 0 {
//	    return
//	}
//	events, err := client.Artists().Calendar(ctx, artists[0].ID, 0)
package songkick

import (
	"errors"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey     string       // Required: Songkick API key
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with a 15s timeout)
	BaseURL    string       // Optional: Base URL for API (defaults to Songkick API, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Songkick API operations.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	artists *ArtistService
}

const (
	// DefaultBaseURL is the default Songkick API endpoint.
	DefaultBaseURL = "https://api.songkick.com/api/3.0"
)

// ErrNoAPIKey is returned by NewClient when no API key is configured.
var ErrNoAPIKey = errors.New("songkick: APIKey is required")

// NewClient creates a new Songkick API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}
	c.artists = &ArtistService{client: c}

	return c, nil
}

// Artists returns the artist search and calendar service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
