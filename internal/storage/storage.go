package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Keys for the three independent persisted snapshots.
const (
	DataKey          = "tasktrail-data"
	NotificationsKey = "tasktrail-notifications"
	TimerKey         = "tasktrail-timer"
)

// DB is a key-value persistence adapter backed by an embedded SQLite
// database. Values are JSON snapshots. Load and Save never propagate
// failures to callers: a read failure degrades to "absent" and a write
// failure leaves the session in-memory only. Both are logged.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at dbPath and runs migrations.
func Open(dbPath string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	d := &DB{db: db, logger: logger}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// OpenMemory creates an in-memory adapter for testing.
func OpenMemory(logger *slog.Logger) (*DB, error) {
	return Open(":memory:", logger)
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate() error {
	var version int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);
	`
	if _, err := d.db.Exec(ddl); err != nil {
		return err
	}
	_, err := d.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// Load reads the value under key into dst and reports whether a usable value
// was found. A corrupt stored value is removed and treated as absent.
func (d *DB) Load(key string, dst any) bool {
	var raw []byte
	err := d.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		d.logger.Warn("storage read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.logger.Warn("discarding corrupt record", "key", key, "error", err)
		d.Remove(key)
		return false
	}
	return true
}

// Save serializes v and writes it under key. Failures are logged and
// swallowed; in-memory state stays authoritative for the session.
func (d *DB) Save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		d.logger.Error("storage marshal failed", "key", key, "error", err)
		return
	}
	_, err = d.db.Exec(
		`INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw,
	)
	if err != nil {
		d.logger.Error("storage write failed", "key", key, "error", err)
	}
}

// Remove deletes the value under key, if any.
func (d *DB) Remove(key string) {
	if _, err := d.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		d.logger.Warn("storage delete failed", "key", key, "error", err)
	}
}

// DefaultPath returns the database location, honoring TASKTRAIL_DATA_DIR.
func DefaultPath() (string, error) {
	if dir := os.Getenv("TASKTRAIL_DATA_DIR"); dir != "" {
		return filepath.Join(dir, "tasktrail.db"), nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "tasktrail", "tasktrail.db"), nil
}

// DefaultLogPath returns the log file location next to the database.
func DefaultLogPath() (string, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "tasktrail.log"), nil
}
