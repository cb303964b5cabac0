package cli

import (
	"testing"

	shellapp "github.com/vibeos/vibesh/internal/application/shell"
	"github.com/vibeos/vibesh/internal/infrastructure/parser"
)

func TestCompleterExtendsPrefix(t *testing.T) {
	c := &replCompleter{service: &shellapp.Service{Parser: parser.New()}}
	line := []rune("run")
	completions, length := c.Do(line, len(line))
	if length != len(line) {
		t.Errorf("length = %d, want %d", length, len(line))
	}
	if len(completions) == 0 {
		t.Fatal("expected completions for 'run'")
	}
	for _, comp := range completions {
		if len(comp) == 0 {
			t.Error("empty completion suffix")
		}
	}
}

func TestCompleterIgnoresCase(t *testing.T) {
	c := &replCompleter{service: &shellapp.Service{Parser: parser.New()}}
	line := []rune("Create")
	completions, length := c.Do(line, len(line))
	if length != len(line) {
		t.Errorf("length = %d, want %d", length, len(line))
	}
	if len(completions) == 0 {
		t.Fatal("expected completions for 'Create'")
	}
}

func TestCompleterNoMatch(t *testing.T) {
	c := &replCompleter{service: &shellapp.Service{Parser: parser.New()}}
	line := []rune("zzz")
	if completions, _ := c.Do(line, len(line)); len(completions) != 0 {
		t.Errorf("completions = %v, want none", completions)
	}
}
