package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Event provider names accepted in events.provider.
const (
	ProviderTicketmaster = "ticketmaster"
	ProviderSongkick     = "songkick"
)

// DefaultExclusions are artists never looked up for concerts.
var DefaultExclusions = []string{
	"blippi",
	"ms. rachel",
	"raffi",
	"beyonce",
	"robyn",
	"chappell roan",
	"elmo",
	"doobie brothers",
}

// Config holds application configuration
type Config struct {
	Spotify      SpotifyConfig
	Ticketmaster APIKeyConfig
	Songkick     APIKeyConfig
	Location     LocationConfig
	Artists      ArtistsConfig
	Events       EventsConfig
	Output       OutputConfig

	// Overall deadline for one run
	Timeout time.Duration
}

// SpotifyConfig holds Spotify OAuth credentials
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string
	BaseURL      string
	TokenURL     string // Overrides the OAuth token endpoint
}

// APIKeyConfig holds credentials for key-authenticated event APIs
type APIKeyConfig struct {
	APIKey  string
	BaseURL string
}

// LocationConfig is where to look for concerts
type LocationConfig struct {
	City        string
	StateCode   string
	CountryCode string
	Radius      int
	Unit        string
}

// ArtistsConfig controls the top-artist lookup
type ArtistsConfig struct {
	Limit     int
	TimeRange string
	Exclude   []string
}

// EventsConfig controls per-artist event lookups
type EventsConfig struct {
	Provider      string
	MaxPerArtist  int
	Concurrency   int
	RatePerSecond float64
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Format string
	Width  int
}

// Load reads configuration from .env, the config file and environment
func Load() (*Config, error) {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	setDefaults(v)

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// SHOWFINDER_SPOTIFY_CLIENT_ID -> spotify.client_id
	v.SetEnvPrefix("SHOWFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("spotify.redirect_uri", "http://127.0.0.1:8888/callback")
	v.SetDefault("location.city", "New York")
	v.SetDefault("location.country_code", "US")
	v.SetDefault("location.radius", 30)
	v.SetDefault("location.unit", "miles")
	v.SetDefault("artists.limit", 100)
	v.SetDefault("artists.time_range", "medium_term")
	v.SetDefault("artists.exclude", DefaultExclusions)
	v.SetDefault("events.provider", ProviderTicketmaster)
	v.SetDefault("events.max_per_artist", 5)
	v.SetDefault("events.concurrency", 4)
	v.SetDefault("events.rate_per_second", 4.0)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.width", 0)

	// Keys with no default still need to be known for AutomaticEnv to
	// resolve them through Get.
	for _, key := range []string{
		"spotify.client_id", "spotify.client_secret", "spotify.refresh_token", "spotify.base_url", "spotify.token_url",
		"ticketmaster.api_key", "ticketmaster.base_url",
		"songkick.api_key", "songkick.base_url",
		"location.state_code",
	} {
		v.SetDefault(key, "")
	}
}

// Map config to struct
func fromViper(v *viper.Viper) *Config {
	return &Config{
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			ClientSecret: v.GetString("spotify.client_secret"),
			RedirectURI:  v.GetString("spotify.redirect_uri"),
			RefreshToken: v.GetString("spotify.refresh_token"),
			BaseURL:      v.GetString("spotify.base_url"),
			TokenURL:     v.GetString("spotify.token_url"),
		},
		Ticketmaster: APIKeyConfig{
			APIKey:  v.GetString("ticketmaster.api_key"),
			BaseURL: v.GetString("ticketmaster.base_url"),
		},
		Songkick: APIKeyConfig{
			APIKey:  v.GetString("songkick.api_key"),
			BaseURL: v.GetString("songkick.base_url"),
		},
		Location: LocationConfig{
			City:        v.GetString("location.city"),
			StateCode:   v.GetString("location.state_code"),
			CountryCode: v.GetString("location.country_code"),
			Radius:      v.GetInt("location.radius"),
			Unit:        v.GetString("location.unit"),
		},
		Artists: ArtistsConfig{
			Limit:     v.GetInt("artists.limit"),
			TimeRange: v.GetString("artists.time_range"),
			Exclude:   nameList(v, "artists.exclude"),
		},
		Events: EventsConfig{
			Provider:      strings.ToLower(v.GetString("events.provider")),
			MaxPerArtist:  v.GetInt("events.max_per_artist"),
			Concurrency:   v.GetInt("events.concurrency"),
			RatePerSecond: v.GetFloat64("events.rate_per_second"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
			Width:  v.GetInt("output.width"),
		},
		Timeout: v.GetDuration("timeout"),
	}
}

// nameList reads a list of names. A plain string, as set through the
// environment, is split on commas so multi-word names survive.
func nameList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks that the credentials needed for a concerts run are present
func (c *Config) Validate() error {
	var missing []string

	if c.Spotify.ClientID == "" {
		missing = append(missing, "spotify.client_id")
	}
	if c.Spotify.ClientSecret == "" {
		missing = append(missing, "spotify.client_secret")
	}
	if c.Spotify.RefreshToken == "" {
		missing = append(missing, "spotify.refresh_token (run 'showfinder auth')")
	}

	switch c.Events.Provider {
	case ProviderTicketmaster:
		if c.Ticketmaster.APIKey == "" {
			missing = append(missing, "ticketmaster.api_key")
		}
	case ProviderSongkick:
		if c.Songkick.APIKey == "" {
			missing = append(missing, "songkick.api_key")
		}
	default:
		return fmt.Errorf("unknown events provider %q (want %s or %s)",
			c.Events.Provider, ProviderTicketmaster, ProviderSongkick)
	}

	if c.Location.City == "" {
		missing = append(missing, "location.city")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	if dir := os.Getenv("SHOWFINDER_CONFIG_DIR"); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "showfinder")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	configFile := filepath.Join(getConfigDir(), "config.yaml")

	// Keep keys we don't model (and comments are lost either way)
	v.SetConfigFile(configFile)
	_ = v.ReadInConfig()

	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.client_secret", c.Spotify.ClientSecret)
	v.Set("spotify.redirect_uri", c.Spotify.RedirectURI)
	v.Set("spotify.refresh_token", c.Spotify.RefreshToken)
	if c.Ticketmaster.APIKey != "" {
		v.Set("ticketmaster.api_key", c.Ticketmaster.APIKey)
	}
	if c.Songkick.APIKey != "" {
		v.Set("songkick.api_key", c.Songkick.APIKey)
	}
	v.Set("location.city", c.Location.City)

	// Write to file
	return v.WriteConfigAs(configFile)
}
