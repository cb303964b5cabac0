package assistant

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vibeos/vibesh/internal/domain"
)

const choiceFileName = "ai_config.json"

// assistantNamePattern is the allowed alphabet for a persisted assistant
// name; anything else is stripped before the file is written or trusted.
var assistantNamePattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// ChoiceStore persists which assistant the user picked in the selector menu.
// The file is shared with the boot-time selector, so reads validate as
// strictly as writes.
type ChoiceStore struct {
	dir string
}

// NewChoiceStore roots the store at dir (normally the config directory).
func NewChoiceStore(dir string) *ChoiceStore {
	return &ChoiceStore{dir: dir}
}

// Load reads the saved choice. A missing or corrupt file yields the zero
// choice, never an error.
func (s *ChoiceStore) Load() domain.AssistantChoice {
	var choice domain.AssistantChoice
	data, err := os.ReadFile(s.path())
	if err != nil {
		return choice
	}
	if err := json.Unmarshal(data, &choice); err != nil {
		return domain.AssistantChoice{}
	}
	choice.SelectedAssistant = SanitizeAssistantName(choice.SelectedAssistant)
	return choice
}

// Save validates and writes the choice. An empty sanitized name is refused.
func (s *ChoiceStore) Save(choice domain.AssistantChoice) error {
	choice.SelectedAssistant = SanitizeAssistantName(choice.SelectedAssistant)
	if choice.SelectedAssistant == "" {
		return &domain.PersistenceError{
			Path: s.path(),
			Err:  errInvalidChoice,
		}
	}
	if err := os.MkdirAll(s.dir, domain.DirectoryPermissions); err != nil {
		return &domain.PersistenceError{Path: s.dir, Err: err}
	}
	data, err := json.MarshalIndent(choice, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Path: s.path(), Err: err}
	}
	if err := os.WriteFile(s.path(), data, domain.StateFilePermissions); err != nil {
		return &domain.PersistenceError{Path: s.path(), Err: err}
	}
	return nil
}

// Path returns the choice file location.
func (s *ChoiceStore) Path() string {
	return s.path()
}

func (s *ChoiceStore) path() string {
	return filepath.Join(s.dir, choiceFileName)
}

// SanitizeAssistantName strips everything outside [a-zA-Z0-9_-].
func SanitizeAssistantName(name string) string {
	return assistantNamePattern.ReplaceAllString(name, "")
}

var errInvalidChoice = errors.New("assistant name empty after sanitization")
