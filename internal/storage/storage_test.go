package storage

import (
	"path/filepath"
	"testing"

	"github.com/NishantDwd/tasktrail/internal/logging"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory(logging.Discard())
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ============================================================
// Initialization
// ============================================================

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "tasktrail.db")
	db, err := Open(path, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var version int
	db.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

// ============================================================
// Load / Save / Remove
// ============================================================

func TestSaveLoadRoundtrip(t *testing.T) {
	db := newTestDB(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	db.Save("k", payload{Name: "alpha", Count: 3})

	var got payload
	if !db.Load("k", &got) {
		t.Fatal("expected value under k")
	}
	if got.Name != "alpha" || got.Count != 3 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	db := newTestDB(t)

	db.Save("k", 1)
	db.Save("k", 2)

	var got int
	if !db.Load("k", &got) {
		t.Fatal("expected value under k")
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestLoadMissingKey(t *testing.T) {
	db := newTestDB(t)

	var got map[string]any
	if db.Load("nope", &got) {
		t.Fatal("expected miss for absent key")
	}
}

func TestLoadCorruptValueIsDiscarded(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.db.Exec(`INSERT INTO records (key, value) VALUES (?, ?)`, "bad", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if db.Load("bad", &got) {
		t.Fatal("expected corrupt value to be treated as absent")
	}

	// The row itself should be gone now.
	var n int
	db.db.QueryRow(`SELECT COUNT(*) FROM records WHERE key = 'bad'`).Scan(&n)
	if n != 0 {
		t.Fatalf("expected corrupt row removed, found %d", n)
	}
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)

	db.Save("k", "v")
	db.Remove("k")

	var got string
	if db.Load("k", &got) {
		t.Fatal("expected key removed")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	db := newTestDB(t)

	db.Save(DataKey, map[string]int{"a": 1})
	db.Save(NotificationsKey, map[string]int{"b": 2})

	db.Remove(DataKey)

	var got map[string]int
	if !db.Load(NotificationsKey, &got) {
		t.Fatal("removing one key must not affect another")
	}
	if got["b"] != 2 {
		t.Fatalf("unexpected value: %v", got)
	}
}

// ============================================================
// Paths
// ============================================================

func TestDefaultPathHonorsEnvOverride(t *testing.T) {
	t.Setenv("TASKTRAIL_DATA_DIR", "/tmp/override")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/tmp/override", "tasktrail.db") {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestDefaultLogPathSitsNextToDB(t *testing.T) {
	t.Setenv("TASKTRAIL_DATA_DIR", "/tmp/override")
	path, err := DefaultLogPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != "/tmp/override" {
		t.Fatalf("unexpected log dir: %s", path)
	}
}
