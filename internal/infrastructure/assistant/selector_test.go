package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vibeos/vibesh/internal/domain"
)

func TestChoiceRoundTrip(t *testing.T) {
	store := NewChoiceStore(t.TempDir())
	want := domain.AssistantChoice{
		SelectedAssistant: "claude-code",
		AutoLaunch:        true,
		UseAssistant:      true,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got := store.Load()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("choice mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveSanitizesName(t *testing.T) {
	store := NewChoiceStore(t.TempDir())
	choice := domain.AssistantChoice{SelectedAssistant: "claude-code; rm -rf /"}
	if err := store.Save(choice); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got := store.Load()
	if got.SelectedAssistant != "claude-coderm-rf" {
		t.Errorf("SelectedAssistant = %q, want metacharacters stripped", got.SelectedAssistant)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	store := NewChoiceStore(t.TempDir())
	if err := store.Save(domain.AssistantChoice{SelectedAssistant: "!!!"}); err == nil {
		t.Error("expected error for name that sanitizes to empty")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, choiceFileName), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := NewChoiceStore(dir).Load()
	if got != (domain.AssistantChoice{}) {
		t.Errorf("Load() = %+v, want zero choice", got)
	}
}
