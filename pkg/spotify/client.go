package spotify

import (
	"net/http"
)

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client // Required: HTTP client that authorizes requests (see OAuthConfig)
	BaseURL    string       // Optional: Base URL for API (defaults to Spotify API, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     Logger

	me *MeService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"
)

// NewClient creates a new Spotify API client.
//
// Returns ErrNoHTTPClient if cfg.HTTPClient is nil. Spotify rejects
// anonymous requests, so there is no useful default client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.HTTPClient == nil {
		return nil, ErrNoHTTPClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: cfg.HTTPClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}
	c.me = &MeService{client: c}

	return c, nil
}

// Me returns the service for endpoints scoped to the current user.
func (c *Client) Me() *MeService {
	return c.me
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
