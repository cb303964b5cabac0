package contextstore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/pkg/logger"
)

type stubDetector struct {
	info domain.ProjectContext
}

func (s stubDetector) Detect(string) domain.ProjectContext { return s.info }

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := New(dir, stubDetector{}, nil, logger.NewStd(false))
	return store, dir
}

func TestRoundTripIdempotent(t *testing.T) {
	store, dir := newTestStore(t)
	if err := store.RecordCommand("git status", domain.IntentGitStatus, true); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}

	reloaded := New(dir, stubDetector{}, nil, logger.NewStd(false))
	if diff := cmp.Diff(store.State(), reloaded.State()); diff != "" {
		t.Fatalf("state not round-trip stable (-first +second):\n%s", diff)
	}

	// Saving the loaded state and loading again must yield the same structure.
	if err := reloaded.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	third := New(dir, stubDetector{}, nil, logger.NewStd(false))
	if diff := cmp.Diff(reloaded.State(), third.State()); diff != "" {
		t.Fatalf("save(load()) not idempotent (-want +got):\n%s", diff)
	}
}

func TestHistoryCap(t *testing.T) {
	store, dir := newTestStore(t)
	total := domain.HistoryCap + 50
	for i := 0; i < total; i++ {
		if err := store.RecordCommand(fmt.Sprintf("cmd-%d", i), domain.IntentUnknown, true); err != nil {
			t.Fatalf("RecordCommand %d: %v", i, err)
		}
	}

	reloaded := New(dir, stubDetector{}, nil, logger.NewStd(false))
	history := reloaded.History()
	if len(history) != domain.HistoryCap {
		t.Fatalf("history length = %d, want exactly %d", len(history), domain.HistoryCap)
	}
	// Most recent entries in chronological order.
	if history[0].Command != fmt.Sprintf("cmd-%d", total-domain.HistoryCap) {
		t.Fatalf("oldest retained = %q", history[0].Command)
	}
	if history[len(history)-1].Command != fmt.Sprintf("cmd-%d", total-1) {
		t.Fatalf("newest retained = %q", history[len(history)-1].Command)
	}
}

func TestRecentCommandsCap(t *testing.T) {
	store, _ := newTestStore(t)
	for i := 0; i < domain.RecentCommandsCap+5; i++ {
		if err := store.RecordCommand(fmt.Sprintf("cmd-%d", i), domain.IntentUnknown, true); err != nil {
			t.Fatal(err)
		}
	}
	recents := store.State().RecentCommands
	if len(recents) != domain.RecentCommandsCap {
		t.Fatalf("recents length = %d, want %d", len(recents), domain.RecentCommandsCap)
	}
	if recents[len(recents)-1] != fmt.Sprintf("cmd-%d", domain.RecentCommandsCap+4) {
		t.Fatalf("newest recent = %q", recents[len(recents)-1])
	}
}

func TestCorruptFilesYieldDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, contextFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, historyFileName), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := New(dir, stubDetector{}, nil, logger.NewStd(false))
	if store.State().Preferences.PackageManager != "auto" {
		t.Fatalf("expected default preferences, got %+v", store.State().Preferences)
	}
	if len(store.History()) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(store.History()))
	}
}

func TestRefreshProjectPersistsDetection(t *testing.T) {
	dir := t.TempDir()
	detector := stubDetector{info: domain.ProjectContext{Path: "/work/app", Type: domain.ProjectNode}}
	store := New(dir, detector, nil, logger.NewStd(false))

	info := store.RefreshProject()
	if info.Type != domain.ProjectNode {
		t.Fatalf("type = %s", info.Type)
	}

	reloaded := New(dir, detector, nil, logger.NewStd(false))
	if reloaded.State().ProjectType != domain.ProjectNode {
		t.Fatalf("persisted type = %s", reloaded.State().ProjectType)
	}
	if reloaded.State().CurrentProject != "/work/app" {
		t.Fatalf("persisted project = %s", reloaded.State().CurrentProject)
	}
}

func TestSuggestionsForUnknownProject(t *testing.T) {
	// Zero-value detector result: type is the empty string, not "unknown".
	store, _ := newTestStore(t)
	got := store.Suggestions()
	if len(got) == 0 {
		t.Fatal("expected suggestions for undetected project type")
	}

	dir := t.TempDir()
	detected := New(dir, stubDetector{info: domain.ProjectContext{Type: domain.ProjectUnknown}}, nil, logger.NewStd(false))
	if got := detected.Suggestions(); len(got) == 0 {
		t.Fatal("expected suggestions for unknown project type")
	}
}
