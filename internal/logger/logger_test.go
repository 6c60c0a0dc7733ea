package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talent.log")

	log, err := New(true, true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("opening profile", CandidateFields("42")...)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	line := string(data)
	for _, want := range []string{`"step":"opening profile"`, `"level":"debug"`, `"candidate_id":"42"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %s", want, line)
		}
	}
}

func TestNewInfoLevelByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talent.log")

	log, err := New(false, false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log contents %q", data)
	}
}
