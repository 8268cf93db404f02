package database

import (
	"os"
	"path/filepath"
	"testing"
)

type rec struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	in := []rec{{ID: "a", Note: "첫번째"}, {ID: "b", Note: "two"}}
	if err := store.Save("recs.json", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out []rec
	if err := store.Load("recs.json", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestFileStore_MissingFileIsNotAnError(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	out := []rec{{ID: "sentinel"}}
	if err := store.Load("absent.json", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "sentinel" {
		t.Errorf("Load touched the target for a missing file: %+v", out)
	}
	if store.Exists("absent.json") {
		t.Error("Exists = true for a missing file")
	}
}

func TestFileStore_CorruptFileFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out []rec
	if err := store.Load("bad.json", &out); err == nil {
		t.Fatal("Load accepted corrupt JSON")
	}
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Save("recs.json", []rec{{ID: "a"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "recs.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents = %v, want only recs.json", names)
	}
}
