package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: " ERROR ", want: zerolog.ErrorLevel},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closeLog, err := setupLogger("", tt.level)
			if closeLog == nil {
				t.Fatal("closer must never be nil")
			}
			defer closeLog()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for level %q", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("setupLogger: %v", err)
			}
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showfinder.log")

	logger, closeLog, err := setupLogger(path, "info")
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	logger.Info().Str("run_id", "abc").Msg("search started")
	logger.Debug().Msg("filtered out")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"message":"search started"`, `"run_id":"abc"`, `"version":`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "filtered out") {
		t.Errorf("debug line written at info level:\n%s", out)
	}
}

func TestSetupLogger_FileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "showfinder.log")

	_, closeLog, err := setupLogger(path, "info")
	defer closeLog()
	if err == nil {
		t.Fatal("expected an error for an unopenable log file")
	}
}
