package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/showfinder/internal/concerts"
	"github.com/jfmyers9/showfinder/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse upcoming concerts in a terminal UI",
	Long: `Run a concert search and browse the results in a terminal-based
user interface.

The TUI includes:
- A summary of the search and any failed artist lookups
- A table of concerts, earliest first
- Details for the selected concert

Press 'r' to search again and 'q' to quit. Logs go to stderr unless
--log-file is set, so pass --log-file to keep them off the screen.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	addSearchFlags(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadSearchConfig(cmd)
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

	pipeline, loc, err := newPipeline(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// Each search gets its own deadline; the TUI itself runs until quit.
	search := func(ctx context.Context) (*concerts.Report, error) {
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		return pipeline.Run(ctx)
	}

	return tui.New(loc.String(), search).Run(ctx)
}
