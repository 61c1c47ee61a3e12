package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("SHOWFINDER_CONFIG_DIR", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOWFINDER_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Location.City != "New York" {
		t.Errorf("expected default city New York, got %q", cfg.Location.City)
	}
	if cfg.Location.Radius != 30 || cfg.Location.Unit != "miles" || cfg.Location.CountryCode != "US" {
		t.Errorf("unexpected location defaults: %+v", cfg.Location)
	}
	if cfg.Artists.Limit != 100 || cfg.Artists.TimeRange != "medium_term" {
		t.Errorf("unexpected artist defaults: %+v", cfg.Artists)
	}
	if !reflect.DeepEqual(cfg.Artists.Exclude, DefaultExclusions) {
		t.Errorf("expected default exclusions, got %v", cfg.Artists.Exclude)
	}
	if cfg.Events.Provider != ProviderTicketmaster || cfg.Events.MaxPerArtist != 5 || cfg.Events.Concurrency != 4 {
		t.Errorf("unexpected events defaults: %+v", cfg.Events)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", cfg.Timeout)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("expected table format, got %q", cfg.Output.Format)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	writeConfig(t, `
spotify:
  client_id: file-client
  client_secret: file-secret
  refresh_token: file-refresh
ticketmaster:
  api_key: file-key
location:
  city: Chicago
  state_code: IL
  radius: 50
artists:
  limit: 20
  exclude:
    - Some Kids Band
events:
  provider: Songkick
  concurrency: 1
timeout: 90s
`)
	t.Setenv("SHOWFINDER_TICKETMASTER_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Spotify.ClientID != "file-client" || cfg.Spotify.RefreshToken != "file-refresh" {
		t.Errorf("unexpected spotify config: %+v", cfg.Spotify)
	}
	if cfg.Ticketmaster.APIKey != "env-key" {
		t.Errorf("expected env to override file, got %q", cfg.Ticketmaster.APIKey)
	}
	if cfg.Location.City != "Chicago" || cfg.Location.StateCode != "IL" || cfg.Location.Radius != 50 {
		t.Errorf("unexpected location: %+v", cfg.Location)
	}
	if cfg.Artists.Limit != 20 || !reflect.DeepEqual(cfg.Artists.Exclude, []string{"Some Kids Band"}) {
		t.Errorf("unexpected artists: %+v", cfg.Artists)
	}
	if cfg.Events.Provider != ProviderSongkick {
		t.Errorf("expected provider to be lower-cased, got %q", cfg.Events.Provider)
	}
	if cfg.Events.Concurrency != 1 {
		t.Errorf("expected concurrency 1, got %d", cfg.Events.Concurrency)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %v", cfg.Timeout)
	}
}

func TestLoad_ExcludeFromEnv(t *testing.T) {
	writeConfig(t, "artists:\n  exclude:\n    - Some Kids Band\n")
	t.Setenv("SHOWFINDER_ARTISTS_EXCLUDE", "chappell roan, ms. rachel,,Raffi ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"chappell roan", "ms. rachel", "Raffi"}
	if !reflect.DeepEqual(cfg.Artists.Exclude, want) {
		t.Errorf("expected %q, got %q", want, cfg.Artists.Exclude)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Spotify:      SpotifyConfig{ClientID: "id", ClientSecret: "secret", RefreshToken: "refresh"},
			Ticketmaster: APIKeyConfig{APIKey: "key"},
			Location:     LocationConfig{City: "New York"},
			Events:       EventsConfig{Provider: ProviderTicketmaster},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing refresh token", func(c *Config) { c.Spotify.RefreshToken = "" }, "spotify.refresh_token"},
		{"missing ticketmaster key", func(c *Config) { c.Ticketmaster.APIKey = "" }, "ticketmaster.api_key"},
		{"songkick needs its own key", func(c *Config) { c.Events.Provider = ProviderSongkick }, "songkick.api_key"},
		{"unknown provider", func(c *Config) { c.Events.Provider = "eventbrite" }, "unknown events provider"},
		{"missing city", func(c *Config) { c.Location.City = "" }, "location.city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.errContains == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	writeConfig(t, "events:\n  concurrency: 2\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Spotify.ClientID = "saved-id"
	cfg.Spotify.RefreshToken = "saved-refresh"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if reloaded.Spotify.ClientID != "saved-id" || reloaded.Spotify.RefreshToken != "saved-refresh" {
		t.Errorf("expected saved credentials, got %+v", reloaded.Spotify)
	}
	if reloaded.Events.Concurrency != 2 {
		t.Errorf("expected unmodelled key to survive save, got concurrency %d", reloaded.Events.Concurrency)
	}
}
