package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lexiz.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesRecordsTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='records'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "records" {
		t.Errorf("table name = %q, want 'records'", name)
	}
}

func TestRecordGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}
}

func TestRecordPutGetOverwrite(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte(`["a"]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, "k", []byte(`["a","b"]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `["a","b"]` {
		t.Errorf("value = %s, want %s", got, `["a","b"]`)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1 after upsert", count)
	}
}

func TestRecordDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestUpdateCommits(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	err := repo.Update(ctx, func(tx RecordTx) error {
		if err := tx.Put(ctx, "a", []byte("1")); err != nil {
			return err
		}
		got, err := tx.Get(ctx, "a")
		if err != nil {
			return err
		}
		if string(got) != "1" {
			t.Errorf("read inside tx = %q, want %q", got, "1")
		}
		return tx.Put(ctx, "b", []byte("2"))
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, err := repo.Get(ctx, key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.Update(ctx, func(tx RecordTx) error {
		if err := tx.Put(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("update err = %v, want boom", err)
	}
	if _, err := repo.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after rollback err = %v, want ErrNotFound", err)
	}
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexiz.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.RecordRepo().Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.RecordRepo().Get(ctx, "k")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("value = %q, want %q", got, "v")
	}
}

func TestWithTxLock(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"/tmp/a.db", "/tmp/a.db?_txlock=immediate"},
		{"file:a.db?cache=shared", "file:a.db?cache=shared&_txlock=immediate"},
		{"a.db?_txlock=exclusive", "a.db?_txlock=exclusive"},
	}
	for _, tt := range tests {
		if got := withTxLock(tt.dsn); got != tt.want {
			t.Errorf("withTxLock(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("LEXIZ_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("LEXIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "lexiz", "lexiz.db")
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}
