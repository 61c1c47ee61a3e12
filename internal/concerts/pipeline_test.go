package concerts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/showfinder/internal/artists"
	"github.com/jfmyers9/showfinder/internal/events"
	"github.com/jfmyers9/showfinder/internal/upstream"
)

type fakeSource struct {
	names []string
	err   error
	limit int
}

func (f *fakeSource) FetchTopArtists(ctx context.Context, limit int) ([]artists.Artist, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]artists.Artist, len(f.names))
	for i, n := range f.names {
		out[i] = artists.Artist{Name: n, Rank: i + 1}
	}
	return out, nil
}

// fakeProvider serves canned events per artist.
type fakeProvider struct {
	mu     sync.Mutex
	events map[string][]events.RawEvent
	errs   map[string]error
	hook   func(artist string) // runs before the lookup returns
	calls  []string
}

func (f *fakeProvider) Name() events.ProviderName {
	return events.ProviderTicketmaster
}

func (f *fakeProvider) FindEvents(ctx context.Context, artist string, loc events.Location) ([]events.RawEvent, error) {
	f.mu.Lock()
	f.calls = append(f.calls, artist)
	f.mu.Unlock()

	if f.hook != nil {
		f.hook(artist)
	}
	if err := f.errs[artist]; err != nil {
		return nil, err
	}
	return f.events[artist], nil
}

func TestPipeline_Run_Scenario(t *testing.T) {
	// A has one good and one undated event, B has none.
	provider := &fakeProvider{
		events: map[string][]events.RawEvent{
			"A": {
				tmEvent("2024-07-04", "19:30:00", "Venue", "City", "ST", "A", "Opener"),
				tmEvent("N/A", "", "Venue", "City", "ST"),
			},
			"B": {},
		},
	}

	p := NewPipeline(&fakeSource{names: []string{"A", "B"}}, provider, Options{Concurrency: 1}, zerolog.Nop())
	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d: %+v", len(report.Events), report.Events)
	}
	e := report.Events[0]
	if e.Artist != "A" || e.DateDisplay() != "Jul 04 2024" || e.Time != "7:30pm" {
		t.Errorf("unexpected event %+v", e)
	}
	if report.Empty() || report.Canceled || len(report.Failures) != 0 {
		t.Errorf("unexpected report state %+v", report)
	}
	if report.Artists != 2 || report.RunID == "" {
		t.Errorf("expected 2 artists and a run id, got %d %q", report.Artists, report.RunID)
	}
}

func TestPipeline_Run_PartialFailure(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]events.RawEvent{
			"A": {tmEvent("2024-07-04", "", "", "", "")},
			"C": {tmEvent("2024-07-01", "", "", "", "")},
		},
		errs: map[string]error{
			"B": fmt.Errorf("lookup: %w", upstream.ErrUnavailable),
		},
	}

	p := NewPipeline(&fakeSource{names: []string{"A", "B", "C"}}, provider, Options{Concurrency: 3}, zerolog.Nop())
	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("per-artist failure must not fail the run: %v", err)
	}

	if len(report.Events) != 2 || report.Events[0].Artist != "C" || report.Events[1].Artist != "A" {
		t.Errorf("unexpected events %+v", report.Events)
	}
	if len(report.Failures) != 1 || report.Failures[0].Artist != "B" {
		t.Fatalf("expected B to be reported as failed, got %+v", report.Failures)
	}
	if !errors.Is(report.Failures[0].Err, upstream.ErrUnavailable) {
		t.Errorf("expected failure to keep its class, got %v", report.Failures[0].Err)
	}
}

func TestPipeline_Run_MalformedMeansNoEvents(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]events.RawEvent{"A": {tmEvent("2024-07-04", "", "", "", "")}},
		errs:   map[string]error{"B": fmt.Errorf("decode: %w", upstream.ErrMalformed)},
	}

	p := NewPipeline(&fakeSource{names: []string{"A", "B"}}, provider, Options{}, zerolog.Nop())
	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Events) != 1 || len(report.Failures) != 0 {
		t.Errorf("expected malformed response to count as no events, got %+v", report)
	}
}

func TestPipeline_Run_ArtistSourceFailureAborts(t *testing.T) {
	provider := &fakeProvider{}
	source := &fakeSource{err: fmt.Errorf("top artists: %w", upstream.ErrAuth)}

	p := NewPipeline(source, provider, Options{ArtistLimit: 50}, zerolog.Nop())
	report, err := p.Run(context.Background())
	if !errors.Is(err, upstream.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if report != nil {
		t.Errorf("expected no report, got %+v", report)
	}
	if len(provider.calls) != 0 {
		t.Errorf("expected no event lookups, got %v", provider.calls)
	}
	if source.limit != 50 {
		t.Errorf("expected artist limit 50, got %d", source.limit)
	}
}

func TestPipeline_Run_CancelReturnsPartialResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &fakeProvider{
		events: map[string][]events.RawEvent{
			"A": {tmEvent("2024-07-04", "", "", "", "")},
			"C": {tmEvent("2024-07-05", "", "", "", "")},
		},
		errs: map[string]error{"B": context.Canceled},
		hook: func(artist string) {
			if artist == "B" {
				cancel()
			}
		},
	}

	p := NewPipeline(&fakeSource{names: []string{"A", "B", "C"}}, provider, Options{Concurrency: 1}, zerolog.Nop())
	report, err := p.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if report == nil || !report.Canceled {
		t.Fatalf("expected a canceled report, got %+v", report)
	}
	if len(report.Events) != 1 || report.Events[0].Artist != "A" {
		t.Errorf("expected A's event to survive, got %+v", report.Events)
	}
	if len(report.Failures) != 2 {
		t.Errorf("expected B and C to be counted as failed, got %+v", report.Failures)
	}
	for _, call := range provider.calls {
		if call == "C" {
			t.Error("C should not be looked up after cancellation")
		}
	}
}

func TestPipeline_Run_RateLimitedPastDeadline(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("Artist %02d", i)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	provider := &fakeProvider{}
	p := NewPipeline(&fakeSource{names: names}, provider, Options{Concurrency: 4, RatePerSecond: 2}, zerolog.Nop())
	report, err := p.Run(ctx)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if report == nil || !report.Canceled {
		t.Fatalf("expected a canceled report, got %+v", report)
	}
	if len(report.Failures) == 0 || len(provider.calls) >= len(names) {
		t.Errorf("expected the deadline to stop some lookups, got %d calls and %d failures",
			len(provider.calls), len(report.Failures))
	}
	for _, f := range report.Failures {
		if !errors.Is(f.Err, context.DeadlineExceeded) {
			t.Errorf("expected %s to fail on the deadline, got %v", f.Artist, f.Err)
		}
	}
}

func TestPipeline_Run_SequentialOrder(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	provider := &fakeProvider{}

	p := NewPipeline(&fakeSource{names: names}, provider, Options{Concurrency: 1, RatePerSecond: 1000}, zerolog.Nop())
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fmt.Sprint(provider.calls) != fmt.Sprint(names) {
		t.Errorf("expected lookups in artist order, got %v", provider.calls)
	}
}

func TestPipeline_Run_ConcurrentIsDeterministic(t *testing.T) {
	names := make([]string, 20)
	evs := map[string][]events.RawEvent{}
	for i := range names {
		names[i] = fmt.Sprintf("Artist %02d", i)
		// Every artist plays the same night, so order comes from artist rank
		evs[names[i]] = []events.RawEvent{tmEvent("2024-07-04", "", "", "", "")}
	}

	p := NewPipeline(&fakeSource{names: names}, &fakeProvider{events: evs}, Options{Concurrency: 8}, zerolog.Nop())
	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Events) != len(names) {
		t.Fatalf("expected %d events, got %d", len(names), len(report.Events))
	}
	for i, e := range report.Events {
		if e.Artist != names[i] {
			t.Errorf("position %d: got %s, want %s", i, e.Artist, names[i])
		}
	}
}
