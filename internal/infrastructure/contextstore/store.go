// Package contextstore persists shell state and the bounded command history
// as JSON documents in the user's config directory.
package contextstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

const (
	contextFileName = "context.json"
	historyFileName = "command_history.json"
)

// Store owns context.json and command_history.json. Persistence is
// best-effort: read errors silently yield defaults, write errors are logged
// and never raised to the caller as fatal. A single foreground goroutine is
// assumed; concurrent shells race with last-writer-wins semantics.
type Store struct {
	dir      string
	detector ports.ProjectDetector
	log      ports.Logger
	archive  ports.HistoryArchive

	sessionID string
	state     domain.PersistedState
	history   []domain.CommandRecord

	// Set when the config directory could not be created; the store then
	// operates in memory only.
	memoryOnly bool
}

// New loads (or initializes) the store rooted at dir. The archive is an
// optional searchable mirror; pass nil to skip mirroring.
func New(dir string, detector ports.ProjectDetector, archive ports.HistoryArchive, log ports.Logger) *Store {
	s := &Store{
		dir:       dir,
		detector:  detector,
		log:       log,
		archive:   archive,
		sessionID: uuid.NewString(),
	}
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		s.memoryOnly = true
		s.warn("config directory unavailable, continuing in memory", &domain.PersistenceError{Path: dir, Err: err})
	}
	s.state = s.loadState()
	s.history = s.loadHistory()
	return s
}

// State returns the current persisted snapshot.
func (s *Store) State() domain.PersistedState {
	return s.state
}

// SessionID identifies this shell run in the history archive.
func (s *Store) SessionID() string {
	return s.sessionID
}

// RecordCommand appends one history entry, trims both rings to their caps
// and persists. Implements ports.ContextStore.
func (s *Store) RecordCommand(text string, intent domain.Intent, success bool) error {
	wd, _ := os.Getwd()
	record := domain.CommandRecord{
		Timestamp: time.Now(),
		Command:   text,
		Intent:    intent,
		Success:   success,
		Directory: wd,
		SessionID: s.sessionID,
	}

	s.history = append(s.history, record)
	if len(s.history) > domain.HistoryCap {
		s.history = s.history[len(s.history)-domain.HistoryCap:]
	}

	s.state.RecentCommands = append(s.state.RecentCommands, text)
	if len(s.state.RecentCommands) > domain.RecentCommandsCap {
		s.state.RecentCommands = s.state.RecentCommands[len(s.state.RecentCommands)-domain.RecentCommandsCap:]
	}

	if s.archive != nil {
		if err := s.archive.Save(record); err != nil {
			s.warn("history archive save failed", err)
		}
	}
	return s.Save()
}

// RefreshProject re-detects the current project and persists the result.
func (s *Store) RefreshProject() domain.ProjectContext {
	wd, _ := os.Getwd()
	info := s.detector.Detect(wd)
	s.state.CurrentProject = info.Path
	s.state.ProjectType = info.Type
	if err := s.Save(); err != nil {
		s.warn("context save failed", err)
	}
	return info
}

// History returns the in-memory history ring (most recent last).
func (s *Store) History() []domain.CommandRecord {
	return s.history
}

// Save writes both JSON files. Failures are wrapped as PersistenceError and
// logged; the first failure is also returned for callers that care.
func (s *Store) Save() error {
	if s.memoryOnly {
		return nil
	}
	var firstErr error
	if err := writeJSON(filepath.Join(s.dir, contextFileName), s.state); err != nil {
		firstErr = err
		s.warn("could not save context", err)
	}
	if err := writeJSON(filepath.Join(s.dir, historyFileName), s.history); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		s.warn("could not save history", err)
	}
	return firstErr
}

func (s *Store) loadState() domain.PersistedState {
	var state domain.PersistedState
	if readJSON(filepath.Join(s.dir, contextFileName), &state) {
		if state.RecentCommands == nil {
			state.RecentCommands = []string{}
		}
		return state
	}
	return defaultState()
}

func (s *Store) loadHistory() []domain.CommandRecord {
	var history []domain.CommandRecord
	if readJSON(filepath.Join(s.dir, historyFileName), &history) {
		if len(history) > domain.HistoryCap {
			history = history[len(history)-domain.HistoryCap:]
		}
		return history
	}
	return nil
}

func (s *Store) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

func defaultState() domain.PersistedState {
	return domain.PersistedState{
		RecentCommands: []string{},
		Preferences: domain.Preferences{
			Editor:         envOr("EDITOR", "vim"),
			Shell:          envOr("SHELL", "/bin/bash"),
			PackageManager: "auto",
		},
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func readJSON(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, domain.StateFilePermissions); err != nil {
		return &domain.PersistenceError{Path: path, Err: err}
	}
	return nil
}

var _ ports.ContextStore = (*Store)(nil)
