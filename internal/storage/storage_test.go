package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestReadReturnsDefaultWhenAbsent(t *testing.T) {
	s := newTestStore(t)

	got, err := Read(s, "missing", []string{"fallback"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("expected default value, got %v", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	want := payload{Name: "cleaning", Count: 3}
	if err := Write(s, "key", want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(s, "key", payload{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestWriteReplacesExistingValue(t *testing.T) {
	s := newTestStore(t)

	if err := Write(s, "key", "first"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Write(s, "key", "second"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(s, "key", "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected replaced value, got %q", got)
	}
}

func TestHasDistinguishesWrittenFromAbsent(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.Has("key")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if ok {
		t.Fatal("Has reported an unwritten key")
	}

	// an empty collection still counts as written
	if err := Write(s, "key", []string{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	ok, err = s.Has("key")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if !ok {
		t.Fatal("Has missed a written key")
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	s := newTestStore(t)

	if err := Write(s, "key", "value"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Delete("key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	ok, err := s.Has("key")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if ok {
		t.Fatal("key still present after Delete")
	}

	// deleting a missing key is not an error
	if err := s.Delete("key"); err != nil {
		t.Fatalf("Delete on missing key: %v", err)
	}
}

func TestReadReportsCorruptValue(t *testing.T) {
	s := newTestStore(t)

	rec := Record{Key: "broken", Value: "{not json"}
	if err := s.db.Create(&rec).Error; err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	if _, err := Read(s, "broken", map[string]string{}); err == nil {
		t.Fatal("expected an error for a corrupt value")
	}
}
