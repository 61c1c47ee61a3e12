package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/showfinder/internal/concerts"
	"github.com/jfmyers9/showfinder/internal/config"
)

// artistsCmd represents the artists command
var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List the top Spotify artists a search would look up",
	Long: `Fetch your top artists from Spotify and print them in rank order,
after removing the artists in artists.exclude.

Ranks are positions in Spotify's list, so gaps show where an excluded
artist was dropped.`,
	RunE: runArtists,
}

func init() {
	rootCmd.AddCommand(artistsCmd)

	artistsCmd.Flags().IntP("limit", "n", 0, "Number of top artists to fetch (overrides config)")
	artistsCmd.Flags().String("time-range", "", "Spotify time range: short_term, medium_term or long_term (overrides config)")
}

func runArtists(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("limit") {
		cfg.Artists.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("time-range") {
		cfg.Artists.TimeRange, _ = cmd.Flags().GetString("time-range")
	}

	logger, closeLog, err := setupLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	source, err := newArtistSource(ctx, cfg, logger)
	if err != nil {
		return err
	}

	limit := cfg.Artists.Limit
	if limit <= 0 {
		limit = concerts.DefaultArtistLimit
	}
	list, err := source.FetchTopArtists(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to get top artists: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No top artists found.")
		return nil
	}
	for _, a := range list {
		fmt.Fprintf(out, "%3d. %s\n", a.Rank, a.Name)
	}
	return nil
}
