// Package ticketmaster provides a client for the Ticketmaster Discovery API v2.
//
// Only event search is implemented. Event payloads are decoded into
// structs whose nested objects are optional; use the accessor methods on
// *Event to read them without nil checks.
//
// Example usage:
//
//	client, err := ticketmaster.NewClient(ticketmaster.Config{APIKey: "your-api-key"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.Events().Search(ctx, ticketmaster.SearchParams{
//	    Keyword: "Big Thief",
//	    City:    "New York",
//	    Radius:  30,
//	    Unit:    ticketmaster.Miles,
//	})
package ticketmaster

import (
	"errors"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey     string       // Required: Discovery API consumer key
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with a 15s timeout)
	BaseURL    string       // Optional: Base URL for API (defaults to Discovery API, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Discovery API operations.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	events *EventService
}

const (
	// DefaultBaseURL is the default Discovery API endpoint.
	DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"
)

// ErrNoAPIKey is returned by NewClient when no API key is configured.
var ErrNoAPIKey = errors.New("ticketmaster: APIKey is required")

// NewClient creates a new Discovery API client.
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
	c.events = &EventService{client: c}

	return c, nil
}

// Events returns the event search service.
func (c *Client) Events() *EventService {
	return c.events
}

func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
