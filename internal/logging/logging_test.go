package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenWithoutPathDiscards(t *testing.T) {
	logger, closer, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("ignored")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenWritesDebugRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.log")
	logger, closer, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Debug("suggestions refreshed", "query", "rou", "count", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	for _, want := range []string{"level=DEBUG", `msg="suggestions refreshed"`, "query=rou", "count=1"} {
		if !strings.Contains(got, want) {
			t.Errorf("log %q missing %q", got, want)
		}
	}
}

func TestOpenBadPath(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing", "prompt.log")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
