package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/showfinder/internal/concerts"
	"github.com/jfmyers9/showfinder/internal/export"
	"github.com/jfmyers9/showfinder/internal/render"
)

// concertsCmd represents the concerts command
var concertsCmd = &cobra.Command{
	Use:   "concerts",
	Short: "List upcoming concerts for your top Spotify artists",
	Long: `Fetch your top artists from Spotify and list their upcoming concerts
near the configured location, earliest first.

The output format can be a table (default), markdown or json. A summary
and any failed artist lookups are printed to stderr so stdout stays
machine readable.

Results can also be exported to a SQLite snapshot (--export-db) or an
iCalendar file (--export-ics).

Exit codes:
  0 - Search finished (even if some artist lookups failed)
  1 - Configuration error, Spotify failure or interrupted search`,
	RunE: runConcerts,
}

func init() {
	rootCmd.AddCommand(concertsCmd)

	addSearchFlags(concertsCmd)
	concertsCmd.Flags().StringP("format", "f", "", "Output format: table, markdown or json (overrides config)")
	concertsCmd.Flags().IntP("width", "w", 0, "Maximum table column width (0=unlimited, overrides config)")
	concertsCmd.Flags().String("export-db", "", "Write the results to a SQLite snapshot at this path")
	concertsCmd.Flags().String("export-ics", "", "Write the results to an iCalendar file at this path")
}

func runConcerts(cmd *cobra.Command, args []string) error {
	cfg, err := loadSearchConfig(cmd)
	if err != nil {
		return err
	}

	if f, _ := cmd.Flags().GetString("format"); f != "" {
		cfg.Output.Format = f
	}
	if cmd.Flags().Changed("width") {
		cfg.Output.Width, _ = cmd.Flags().GetInt("width")
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
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

	pipeline, loc, err := newPipeline(ctx, cfg, logger)
	if err != nil {
		return err
	}

	report, runErr := pipeline.Run(ctx)
	if report == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if report.Empty() && format != render.FormatJSON {
		fmt.Fprintln(out, render.EmptyMessage(loc.String()))
	} else {
		if err := render.Render(out, report.Events, render.Options{Format: format, Width: cfg.Output.Width}); err != nil {
			return fmt.Errorf("failed to render results: %w", err)
		}
		if !report.Empty() {
			fmt.Fprintln(errOut, render.Summary(report, loc.String(), time.Now()))
		}
	}

	if failed := render.FailureSummary(report); failed != "" {
		fmt.Fprintln(errOut, failed)
		for _, f := range report.Failures {
			fmt.Fprintf(errOut, "  %s: %v\n", f.Artist, f.Err)
		}
	}

	if err := exportResults(cmd, report); err != nil {
		return err
	}

	if runErr != nil {
		if errors.Is(runErr, context.DeadlineExceeded) {
			return fmt.Errorf("search timed out after %s; results are partial", cfg.Timeout)
		}
		return fmt.Errorf("search interrupted; results are partial: %w", runErr)
	}
	return nil
}

// exportResults writes the requested export files.
func exportResults(cmd *cobra.Command, report *concerts.Report) error {
	// Exports run after the search context may have ended
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if path, _ := cmd.Flags().GetString("export-db"); path != "" {
		if err := export.WriteSnapshot(ctx, path, report); err != nil {
			return fmt.Errorf("failed to export SQLite snapshot: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved %d concerts to %s\n", len(report.Events), path)
	}

	if path, _ := cmd.Flags().GetString("export-ics"); path != "" {
		if err := export.WriteICSFile(path, report.Events); err != nil {
			return fmt.Errorf("failed to export calendar: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved calendar to %s\n", path)
	}

	return nil
}
