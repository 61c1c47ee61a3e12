package spotify

import (
	"golang.org/x/oauth2"
)

// ScopeUserTopRead grants access to the user's top artists and tracks.
const ScopeUserTopRead = "user-top-read"

// Endpoint is Spotify's OAuth 2.0 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://accounts.spotify.com/authorize",
	TokenURL:  "https://accounts.spotify.com/api/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// OAuthConfig returns an authorization-code configuration requesting
// the scopes this package needs.
//
// After the user authorizes the app at AuthCodeURL, exchange the code
// for a token and store its RefreshToken. Later runs build an
// authorizing client with:
//
//	httpClient := cfg.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{ScopeUserTopRead},
		Endpoint:     Endpoint,
	}
}
