package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Andersonspita/tempo-pago-dash/internal/storage"
)

func TestFileKVGetMissing(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())

	_, ok, err := kv.Get("timesheet_entries")
	if err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if ok {
		t.Error("Get on missing key reported ok")
	}
}

func TestFileKVSetAndGet(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())

	if err := kv.Set("timesheet_entries", `[{"id":"e1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := kv.Get("timesheet_entries")
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if !ok {
		t.Fatal("Get after Set reported missing")
	}
	if value != `[{"id":"e1"}]` {
		t.Errorf("Get = %q", value)
	}
}

func TestFileKVOverwrite(t *testing.T) {
	kv := storage.NewFileKV(t.TempDir())

	if err := kv.Set("k", "first"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("k", "second"); err != nil {
		t.Fatal(err)
	}

	value, _, err := kv.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if value != "second" {
		t.Errorf("value after overwrite = %q, want %q", value, "second")
	}
}

func TestFileKVRemove(t *testing.T) {
	dir := t.TempDir()
	kv := storage.NewFileKV(dir)

	if err := kv.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("key still present after Remove")
	}

	// Removing a missing key is a no-op.
	if err := kv.Remove("k"); err != nil {
		t.Errorf("Remove on missing key: %v", err)
	}
}

func TestFileKVNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	kv := storage.NewFileKV(dir)

	if err := kv.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "k.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after Set")
	}
}
