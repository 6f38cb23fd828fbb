package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS motor (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	Angle INT NOT NULL,
	Time TEXT NOT NULL
)`

// Store appends commanded angles to a SQLite file. Each append opens and
// closes its own handle; writes are operator-paced, so amortizing the
// connection buys nothing and per-call scoping keeps iterations free of
// shared state.
type Store struct {
	path string
	now  func() time.Time
}

func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append records the angle with a local wall-clock timestamp at second
// resolution. The table is created on first use.
func (s *Store) Append(angle int) error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create motor table: %w", err)
	}
	ts := s.now().Format("2006-01-02 15:04:05")
	if _, err := db.Exec("INSERT INTO motor (Angle, Time) VALUES (?, ?)", angle, ts); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}
