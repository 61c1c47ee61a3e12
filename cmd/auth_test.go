package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCodeFromRedirect(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        string
		errContains string
	}{
		{"valid", "http://127.0.0.1:8888/callback?code=abc&state=s1", "abc", ""},
		{"denied", "http://127.0.0.1:8888/callback?error=access_denied&state=s1", "", "access_denied"},
		{"wrong state", "http://127.0.0.1:8888/callback?code=abc&state=other", "", "state mismatch"},
		{"no code", "http://127.0.0.1:8888/callback?state=s1", "", "no authorization code"},
		{"not a url", "://nope", "", "invalid redirect URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codeFromRedirect(tt.raw, "s1")
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected code %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCallbackHandler(t *testing.T) {
	results := make(chan callbackResult, 1)
	server := httptest.NewServer(callbackHandler("/callback", "s1", results))
	defer server.Close()

	resp, err := http.Get(server.URL + "/callback?code=abc&state=s1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	res := <-results
	if res.err != nil || res.code != "abc" {
		t.Errorf("unexpected callback result: %+v", res)
	}
}

func TestCallbackHandler_StateMismatch(t *testing.T) {
	results := make(chan callbackResult, 1)
	server := httptest.NewServer(callbackHandler("/callback", "s1", results))
	defer server.Close()

	resp, err := http.Get(server.URL + "/callback?code=abc&state=forged")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if res := <-results; res.err == nil {
		t.Error("expected an error for a forged state")
	}
}
