// Package history mirrors recorded commands into a searchable SQLite
// database backing the history subcommand. The JSON files owned by the
// context store remain the canonical persisted state.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

// SQLiteStore persists history in a SQLite database. When the database
// cannot be opened the store degrades to a no-op so the shell keeps working.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) <dir>/history.db.
func NewSQLiteStore(dir string) *SQLiteStore {
	path := filepath.Join(dir, "history.db")
	_ = os.MkdirAll(dir, 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		command TEXT,
		intent TEXT,
		success INTEGER,
		directory TEXT,
		session_id TEXT
	);`)
	return err
}

// Save implements ports.HistoryArchive.
func (s *SQLiteStore) Save(record domain.CommandRecord) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO commands
		(timestamp, command, intent, success, directory, session_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Command,
		string(record.Intent),
		boolToInt(record.Success),
		record.Directory,
		record.SessionID,
	)
	return err
}

// Records returns history entries, newest first. Both limit and search are
// optional.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.CommandRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, command, intent, success, directory, session_id FROM commands")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE command LIKE ? OR intent LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC, id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CommandRecord
	for rows.Next() {
		var rec domain.CommandRecord
		var ts, intent string
		var success int
		if err := rows.Scan(&ts, &rec.Command, &intent, &success, &rec.Directory, &rec.SessionID); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Intent = domain.Intent(intent)
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear drops all archived entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM commands")
	return err
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryArchive = (*SQLiteStore)(nil)
