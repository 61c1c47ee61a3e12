// Package spotify provides a small client for the Spotify Web API.
//
// # Overview
//
// The package covers the read-only personalization endpoints showfinder
// needs: the current user's top artists. Requests are authorized by the
// HTTP client handed to NewClient, which is normally built from an
// golang.org/x/oauth2 token source so expired access tokens are refreshed
// transparently.
//
// # Quick Start
//
//	oauthCfg := spotify.OAuthConfig("client-id", "client-secret", "http://localhost:8888/callback")
//	httpClient := oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: savedRefreshToken})
//
//	client, err := spotify.NewClient(spotify.Config{HTTPClient: httpClient})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.Me().TopArtists(ctx, spotify.TopArtistsOptions{
//	    Limit:     50,
//	    TimeRange: spotify.MediumTerm,
//	})
//
// # Authorization
//
// Spotify uses the OAuth 2.0 authorization code flow. OAuthConfig returns a
// configuration with the Spotify endpoints and the user-top-read scope:
//
//	authURL := oauthCfg.AuthCodeURL(state)
//	// user visits authURL and is redirected back with ?code=...
//	token, err := oauthCfg.Exchange(ctx, code)
//	// persist token.RefreshToken
//
// # Error Handling
//
// Non-2xx responses are returned as *Error. Auth reports rejected or
// expired credentials, Temporary reports rate limiting and server errors:
//
//	var apiErr *spotify.Error
//	if errors.As(err, &apiErr) && apiErr.Auth() {
//	    // run the authorization flow again
//	}
//
// Bodies that cannot be decoded are returned as *DecodeError.
//
// # API Documentation
//
// https://developer.spotify.com/documentation/web-api/reference/get-users-top-artists-and-tracks
package spotify
