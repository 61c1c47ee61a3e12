package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/showfinder/internal/config"
	"github.com/jfmyers9/showfinder/pkg/spotify"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Connect your Spotify account",
	Long: `Connect showfinder to your Spotify account so it can read your top artists.

This command will guide you through the Spotify authorization process:
1. You'll be prompted to enter your Spotify app's client ID and secret
2. A browser URL will be provided for you to authorize the application
3. After authorization, a refresh token will be saved to your config file

Register an app at https://developer.spotify.com/dashboard and add the
redirect URI from spotify.redirect_uri (default http://127.0.0.1:8888/callback).

You can also enter a Ticketmaster API key from https://developer.ticketmaster.com.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Step 1: Get app credentials
	fmt.Println("Spotify Authorization")
	fmt.Println("=====================")
	fmt.Println()
	fmt.Println("You can create a Spotify app at: https://developer.spotify.com/dashboard")
	fmt.Printf("Add this redirect URI to the app: %s\n", cfg.Spotify.RedirectURI)
	fmt.Println()

	// Check if we already have credentials
	if cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "" {
		fmt.Printf("Found existing app credentials.\n")
		fmt.Printf("Client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.Spotify.ClientID = ""
			cfg.Spotify.ClientSecret = ""
		}
	}

	if cfg.Spotify.ClientID == "" {
		if cfg.Spotify.ClientID, err = prompt(reader, "Enter your Spotify Client ID: "); err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
	}
	if cfg.Spotify.ClientSecret == "" {
		if cfg.Spotify.ClientSecret, err = prompt(reader, "Enter your Spotify Client Secret: "); err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
	}

	// Validate inputs
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return fmt.Errorf("client ID and secret are required")
	}

	if cfg.Ticketmaster.APIKey == "" {
		key, err := prompt(reader, "Enter your Ticketmaster API Key (Enter to skip): ")
		if err == nil {
			cfg.Ticketmaster.APIKey = key
		}
	}

	// Step 2: Direct user to authorize
	oauthCfg := spotify.OAuthConfig(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.RedirectURI)
	if cfg.Spotify.TokenURL != "" {
		oauthCfg.Endpoint.TokenURL = cfg.Spotify.TokenURL
	}
	state := uuid.NewString()

	codes := make(chan callbackResult, 2)
	stopServer, err := listenForCallback(cfg.Spotify.RedirectURI, state, codes)
	if err != nil {
		fmt.Printf("\nCould not listen on %s (%v).\n", cfg.Spotify.RedirectURI, err)
		fmt.Println("You will need to paste the URL you are redirected to.")
	} else {
		defer stopServer()
	}

	fmt.Println("\nPlease visit this URL to authorize showfinder:")
	fmt.Printf("\n  %s\n\n", oauthCfg.AuthCodeURL(state))
	fmt.Println("Waiting for Spotify to redirect back...")
	fmt.Println("(If the page does not load, paste the URL from your browser's address bar and press Enter.)")

	go func() {
		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return
		}
		code, err := codeFromRedirect(strings.TrimSpace(line), state)
		codes <- callbackResult{code: code, err: err}
	}()

	var code string
	select {
	case res := <-codes:
		if res.err != nil {
			return fmt.Errorf("authorization failed: %w", res.err)
		}
		code = res.code
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for authorization")
	}

	// Step 3: Exchange the code for tokens
	fmt.Println("Retrieving refresh token...")
	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return fmt.Errorf("Spotify did not return a refresh token")
	}

	// Step 4: Save refresh token to config
	cfg.Spotify.RefreshToken = token.RefreshToken
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Printf("\n✓ Authorization successful!\n")
	fmt.Printf("✓ Refresh token saved to %s/config.yaml\n", configPath)
	fmt.Println("\nYou can now use 'showfinder concerts' to find shows.")

	return nil
}

// prompt prints label and returns the trimmed line the user enters.
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type callbackResult struct {
	code string
	err  error
}

// listenForCallback serves the redirect URI on its host and sends the
// authorization code from the first matching request to results.
func listenForCallback(redirectURI, state string, results chan<- callbackResult) (func(), error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect URI: %w", err)
	}
	if u.Scheme != "http" {
		return nil, fmt.Errorf("redirect URI must use http to be served locally")
	}

	ln, err := net.Listen("tcp", u.Host)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:           callbackHandler(u.Path, state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			results <- callbackResult{err: err}
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// callbackHandler handles the OAuth redirect at path.
func callbackHandler(path, state string, results chan<- callbackResult) http.Handler {
	if path == "" {
		path = "/"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		code, err := codeFromQuery(r.URL.Query(), state)
		if err != nil {
			http.Error(w, "Authorization failed: "+err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "showfinder is authorized. You can close this window.")
		}

		select {
		case results <- callbackResult{code: code, err: err}:
		default:
		}
	})
	return mux
}

// codeFromRedirect extracts the authorization code from the URL Spotify
// redirected to.
func codeFromRedirect(raw, state string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid redirect URL: %w", err)
	}
	return codeFromQuery(u.Query(), state)
}

func codeFromQuery(q url.Values, state string) (string, error) {
	if e := q.Get("error"); e != "" {
		return "", fmt.Errorf("spotify returned %q", e)
	}
	if q.Get("state") != state {
		return "", fmt.Errorf("state mismatch")
	}
	code := q.Get("code")
	if code == "" {
		return "", fmt.Errorf("no authorization code in redirect")
	}
	return code, nil
}
