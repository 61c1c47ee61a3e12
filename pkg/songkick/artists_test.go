package songkick

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestArtistService_Search(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		statusCode  int
		wantIDs     []int64
		wantErr     bool
		errContains string
	}{
		{
			name: "success",
			response: `{"resultsPage": {"status": "ok", "results": {"artist": [
				{"id": 253846, "displayName": "Radiohead"},
				{"id": 1, "displayName": "Radiohead Tribute"}
			]}, "totalEntries": 2}}`,
			statusCode: http.StatusOK,
			wantIDs:    []int64{253846, 1},
		},
		{
			name:       "no matches",
			response:   `{"resultsPage": {"status": "ok", "results": {}, "totalEntries": 0}}`,
			statusCode: http.StatusOK,
			wantIDs:    nil,
		},
		{
			name:        "invalid api key",
			response:    `{"resultsPage": {"status": "error", "error": {"message": "Invalid or missing apikey"}}}`,
			statusCode:  http.StatusUnauthorized,
			wantErr:     true,
			errContains: "Invalid or missing apikey",
		},
		{
			name:        "error with ok status",
			response:    `{"resultsPage": {"status": "error", "error": {"message": "Query too short"}}}`,
			statusCode:  http.StatusOK,
			wantErr:     true,
			errContains: "Query too short",
		},
		{
			name:        "malformed body",
			response:    `not json`,
			statusCode:  http.StatusOK,
			wantErr:     true,
			errContains: "malformed response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search/artists.json" {
					t.Errorf("expected path /search/artists.json, got %s", r.URL.Path)
				}
				if q := r.URL.Query().Get("query"); q != "Radiohead" {
					t.Errorf("expected query Radiohead, got %q", q)
				}
				if k := r.URL.Query().Get("apikey"); k != "test-api-key" {
					t.Errorf("expected apikey test-api-key, got %q", k)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.response))
			})

			artists, err := client.Artists().Search(context.Background(), "Radiohead")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var ids []int64
			for _, a := range artists {
				ids = append(ids, a.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("expected ids %v, got %v", tt.wantIDs, ids)
			}
		})
	}
}

func TestArtistService_Calendar(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artists/253846/calendar.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if pp := r.URL.Query().Get("per_page"); pp != "10" {
			t.Errorf("expected per_page 10, got %q", pp)
		}
		_, _ = w.Write([]byte(`{"resultsPage": {"status": "ok", "results": {"event": [
			{
				"id": 1,
				"displayName": "Radiohead at Madison Square Garden (July 4, 2024)",
				"uri": "https://www.songkick.com/concerts/1",
				"start": {"date": "2024-07-04", "time": null, "datetime": "2024-07-04T19:30:00-0400"},
				"performance": [
					{"displayName": "Radiohead", "billing": "headline"},
					{"displayName": "", "billing": "support", "artist": {"displayName": "Caribou"}}
				],
				"location": {"city": "New York, NY, US"},
				"venue": {"displayName": "Madison Square Garden", "metroArea": {"displayName": "New York", "state": {"displayName": "NY"}}}
			},
			{
				"id": 2,
				"displayName": "Radiohead at Somewhere",
				"start": {"date": "2024-07-09"},
				"location": {"city": "London, UK"}
			}
		]}}}`))
	})

	events, err := client.Artists().Calendar(context.Background(), 253846, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.LocalDate() != "2024-07-04" {
		t.Errorf("unexpected date %q", first.LocalDate())
	}
	if first.LocalTime() != "19:30:00" {
		t.Errorf("expected time from datetime, got %q", first.LocalTime())
	}
	if first.VenueName() != "Madison Square Garden" || first.CityName() != "New York" || first.StateCode() != "NY" {
		t.Errorf("unexpected venue: %q %q %q", first.VenueName(), first.CityName(), first.StateCode())
	}
	if got := first.PerformerNames(); !reflect.DeepEqual(got, []string{"Radiohead", "Caribou"}) {
		t.Errorf("unexpected performers %v", got)
	}

	second := events[1]
	if second.LocalTime() != "" {
		t.Errorf("expected empty time, got %q", second.LocalTime())
	}
	if second.CityName() != "London" {
		t.Errorf("expected city from location, got %q", second.CityName())
	}
	if second.VenueName() != "" || second.StateCode() != "" {
		t.Error("expected missing venue accessors to return empty strings")
	}
}

func TestArtistService_Search_RequiresQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a query")
	})

	if _, err := client.Artists().Search(context.Background(), ""); !errors.Is(err, ErrNoQuery) {
		t.Fatalf("expected ErrNoQuery, got %v", err)
	}
}

func TestError_Predicates(t *testing.T) {
	if !(&Error{StatusCode: http.StatusForbidden}).Auth() {
		t.Error("expected 403 to be an auth error")
	}
	if !(&Error{StatusCode: http.StatusServiceUnavailable}).Temporary() {
		t.Error("expected 503 to be temporary")
	}
	if (&Error{StatusCode: http.StatusOK}).Temporary() {
		t.Error("expected 200 error not to be temporary")
	}
}

func TestArtistService_CalendarPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Query().Get("page"); p != "2" {
			t.Errorf("expected page 2, got %q", p)
		}
		if pp := r.URL.Query().Get("per_page"); pp != "" {
			t.Errorf("expected no per_page, got %q", pp)
		}
		_, _ = w.Write([]byte(`{"resultsPage": {"status": "ok", "results": {"event": [
			{"id": 51, "displayName": "Show 51", "start": {"date": "2024-09-01"}}
		]}, "totalEntries": 120, "perPage": 50, "page": 2}}`))
	})

	page, err := client.Artists().CalendarPage(context.Background(), 253846, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].ID != 51 {
		t.Fatalf("unexpected events %+v", page.Events)
	}
	if page.Page != 2 || page.PerPage != 50 || page.TotalEntries != 120 {
		t.Errorf("unexpected paging: page=%d perPage=%d total=%d", page.Page, page.PerPage, page.TotalEntries)
	}
	if !page.HasNext() {
		t.Error("expected page 2 of 120 entries to have a next page")
	}
}

func TestEventPage_HasNext(t *testing.T) {
	one := []Event{{ID: 1}}

	tests := []struct {
		name string
		page *EventPage
		want bool
	}{
		{"nil", nil, false},
		{"more entries", &EventPage{Events: one, TotalEntries: 75, PerPage: 50, Page: 1}, true},
		{"last page", &EventPage{Events: one, TotalEntries: 75, PerPage: 50, Page: 2}, false},
		{"exact fit", &EventPage{Events: one, TotalEntries: 50, PerPage: 50, Page: 1}, false},
		{"no total", &EventPage{Events: one, PerPage: 50, Page: 1}, false},
		{"empty page", &EventPage{TotalEntries: 75, PerPage: 50, Page: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.HasNext(); got != tt.want {
				t.Errorf("HasNext() = %v, want %v", got, tt.want)
			}
		})
	}
}
