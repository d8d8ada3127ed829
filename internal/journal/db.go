// Package journal records the city's notifications and per-tick
// statistics in SQLite, with a compressed JSONL mirror of the event
// stream. It sits on the collaborator side of the core: the city never
// reads its own state back from here.
package journal

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the journal database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		kind TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stats (
		tick INTEGER PRIMARY KEY,
		population INTEGER NOT NULL,
		buildings INTEGER NOT NULL,
		roads INTEGER NOT NULL,
		treasury INTEGER NOT NULL,
		level INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_tick ON events(tick);
	CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Event is one recorded notification.
type Event struct {
	Tick    uint64 `db:"tick" json:"tick"`
	Kind    string `db:"kind" json:"kind"`
	Message string `db:"message" json:"message"`
}

// StatRow is one tick's aggregate snapshot.
type StatRow struct {
	Tick       uint64 `db:"tick" json:"tick"`
	Population int    `db:"population" json:"population"`
	Buildings  int    `db:"buildings" json:"buildings"`
	Roads      int    `db:"roads" json:"roads"`
	Treasury   int    `db:"treasury" json:"treasury"`
	Level      int    `db:"level" json:"level"`
}

// AppendEvent stores a notification.
func (db *DB) AppendEvent(e Event) error {
	_, err := db.conn.Exec(
		"INSERT INTO events (tick, kind, message) VALUES (?, ?, ?)",
		e.Tick, e.Kind, e.Message,
	)
	return err
}

// RecordStats upserts the aggregate row for a tick.
func (db *DB) RecordStats(s StatRow) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO stats (tick, population, buildings, roads, treasury, level)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.Tick, s.Population, s.Buildings, s.Roads, s.Treasury, s.Level,
	)
	return err
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]Event, error) {
	var events []Event
	err := db.conn.Select(&events,
		"SELECT tick, kind, message FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// StatsHistory returns the most recent N stat rows, newest first.
func (db *DB) StatsHistory(limit int) ([]StatRow, error) {
	var rows []StatRow
	err := db.conn.Select(&rows,
		"SELECT tick, population, buildings, roads, treasury, level FROM stats ORDER BY tick DESC LIMIT ?",
		limit,
	)
	return rows, err
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
