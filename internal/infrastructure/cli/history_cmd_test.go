package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vibeos/vibesh/internal/app"
	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/infrastructure/history"
)

func TestListHistoryEmpty(t *testing.T) {
	container := &app.Container{Archive: history.NewSQLiteStore(t.TempDir())}
	var buf bytes.Buffer
	if err := listHistory(&buf, container, 10, ""); err != nil {
		t.Fatalf("listHistory() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No history recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestListHistoryRendersRecords(t *testing.T) {
	archive := history.NewSQLiteStore(t.TempDir())
	err := archive.Save(domain.CommandRecord{
		Timestamp: time.Now().Add(-time.Minute),
		Command:   "git status",
		Intent:    domain.IntentGitStatus,
		Success:   true,
		Directory: "/work",
		SessionID: "s1",
	})
	if err != nil {
		t.Fatal(err)
	}

	container := &app.Container{Archive: archive}
	var buf bytes.Buffer
	if err := listHistory(&buf, container, 10, ""); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "git status") || !strings.Contains(out, "ok") {
		t.Errorf("output = %q", out)
	}
}
