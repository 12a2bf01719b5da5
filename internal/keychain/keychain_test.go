package keychain

import (
	"errors"
	"testing"
)

// Unit tests use MemoryStore — no macOS Keychain interaction needed.

func testStore() Store {
	return NewMemoryStore()
}

func TestSetAndGet(t *testing.T) {
	s := testStore()

	if err := s.Set("test/set-get", "hello-world"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := s.Get("test/set-get")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "hello-world" {
		t.Errorf("expected 'hello-world', got %q", val)
	}
}

func TestGetNotFound(t *testing.T) {
	s := testStore()

	_, err := s.Get("test/nonexistent")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := testStore()

	s.Set("test/overwrite", "first")
	s.Set("test/overwrite", "second")

	val, err := s.Get("test/overwrite")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "second" {
		t.Errorf("expected 'second', got %q", val)
	}
}

func TestDelete(t *testing.T) {
	s := testStore()

	s.Set("test/delete", "to-delete")

	if err := s.Delete("test/delete"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := s.Get("test/delete")
	if err == nil {
		t.Error("expected error after delete")
	}
}

func TestDeleteNonexistent(t *testing.T) {
	s := testStore()

	if err := s.Delete("test/never-existed"); err != nil {
		t.Errorf("Delete nonexistent: %v", err)
	}
}
