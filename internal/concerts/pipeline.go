package concerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/time/rate"

	"github.com/jfmyers9/showfinder/internal/artists"
	"github.com/jfmyers9/showfinder/internal/events"
	"github.com/jfmyers9/showfinder/internal/upstream"
)

// Pipeline defaults
const (
	DefaultArtistLimit   = 100
	DefaultConcurrency   = 4
	DefaultRatePerSecond = 4.0
)

// ArtistSource returns the artists to look up, most relevant first.
// *artists.Source implements it.
type ArtistSource interface {
	FetchTopArtists(ctx context.Context, limit int) ([]artists.Artist, error)
}

// Options controls a pipeline run
type Options struct {
	ArtistLimit   int             // Top artists to request
	Location      events.Location // Where to look for concerts
	Concurrency   int             // Concurrent event lookups; 1 runs them in order
	RatePerSecond float64         // Event lookups started per second; 0 disables the limit
}

// Pipeline looks up upcoming concerts for the user's top artists
type Pipeline struct {
	source   ArtistSource
	provider events.Provider
	opts     Options
	logger   zerolog.Logger
}

// NewPipeline creates a Pipeline. Zero options take the package defaults,
// except RatePerSecond where zero means unlimited.
func NewPipeline(source ArtistSource, provider events.Provider, opts Options, logger zerolog.Logger) *Pipeline {
	if opts.ArtistLimit <= 0 {
		opts.ArtistLimit = DefaultArtistLimit
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	return &Pipeline{
		source:   source,
		provider: provider,
		opts:     opts,
		logger:   logger.With().Str("component", "pipeline").Logger(),
	}
}

// Run fetches the top artists, looks up events for each of them and
// returns the merged, date-ordered result.
//
// A failure to fetch artists aborts the run. A failed event lookup only
// removes that artist's events and is listed in Report.Failures. When ctx
// ends early Run returns the events found so far with ctx.Err().
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	logger := p.logger.With().Str("run_id", runID).Logger()

	logger.Info().
		Str("provider", string(p.provider.Name())).
		Str("location", p.opts.Location.String()).
		Msg("Starting concert search")

	list, err := p.source.FetchTopArtists(ctx, p.opts.ArtistLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top artists: %w", err)
	}
	logger.Debug().Int("artists", len(list)).Msg("Fetched top artists")

	var limiter *rate.Limiter
	if p.opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(p.opts.RatePerSecond), 1)
	}

	// One slot per artist keeps results in artist order without locking.
	found := make([][]Event, len(list))
	failed := make([]error, len(list))

	wp := pool.New().WithMaxGoroutines(p.opts.Concurrency)
	for i, a := range list {
		wp.Go(func() {
			evs, err := p.lookup(ctx, limiter, a.Name, logger)
			if err != nil {
				failed[i] = err
				logger.Warn().Err(err).Str("artist", a.Name).Msg("Event lookup failed")
				return
			}
			found[i] = evs
		})
	}
	wp.Wait()

	report := &Report{
		RunID:   runID,
		Events:  Aggregate(found),
		Artists: len(list),
	}
	for i, err := range failed {
		if err != nil {
			report.Failures = append(report.Failures, ArtistFailure{Artist: list[i].Name, Err: err})
		}
	}

	logger.Info().
		Int("events", len(report.Events)).
		Int("failed", len(report.Failures)).
		Msg("Concert search finished")

	if err := ctx.Err(); err != nil {
		report.Canceled = true
		return report, err
	}
	return report, nil
}

// waitTurn blocks until limiter grants a lookup or ctx ends. Unlike
// Limiter.Wait it does not give up early when the token would arrive
// after the deadline, so an expired run always reports ctx.Err().
func waitTurn(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}

	r := limiter.Reserve()
	if !r.OK() {
		return fmt.Errorf("rate limiter refused a lookup")
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// lookup finds and normalizes events for one artist.
func (p *Pipeline) lookup(ctx context.Context, limiter *rate.Limiter, artist string, logger zerolog.Logger) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := waitTurn(ctx, limiter); err != nil {
		return nil, err
	}

	raw, err := p.provider.FindEvents(ctx, artist, p.opts.Location)
	if err != nil {
		// A payload we cannot read means no events, not a failed artist
		if errors.Is(err, upstream.ErrMalformed) {
			logger.Warn().Err(err).Str("artist", artist).Msg("Ignoring malformed event response")
			return nil, nil
		}
		return nil, err
	}

	evs := make([]Event, 0, len(raw))
	for _, r := range raw {
		e, ok := Normalize(r, artist)
		if !ok {
			logger.Debug().
				Str("artist", artist).
				Str("date", r.Date()).
				Msg("Dropping event without a usable date")
			continue
		}
		evs = append(evs, e)
	}
	return evs, nil
}
