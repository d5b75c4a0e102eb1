package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFSStorePutGet(t *testing.T) {
	base := t.TempDir()
	s, err := NewFSStore(base)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key, err := s.Put("uploads/bank.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if key != "uploads/bank.pdf" {
		t.Fatalf("key = %q", key)
	}

	rc, err := s.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "%PDF-1.4" {
		t.Fatalf("content = %q", b)
	}
}

func TestFSStoreKeepsKeysInsideBase(t *testing.T) {
	base := t.TempDir()
	s, _ := NewFSStore(filepath.Join(base, "blobs"))

	key, err := s.Put("../../escape.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if key != "escape.txt" {
		t.Fatalf("key = %q", key)
	}
	if _, err := os.Stat(filepath.Join(base, "blobs", "escape.txt")); err != nil {
		t.Fatalf("expected file inside base: %v", err)
	}

	if _, err := s.Put("", strings.NewReader("x")); err != ErrInvalidKey {
		t.Fatalf("empty key err = %v", err)
	}
	if _, err := s.Get("/"); err != ErrInvalidKey {
		t.Fatalf("root key err = %v", err)
	}
}

func TestFSStoreDelete(t *testing.T) {
	s, _ := NewFSStore(t.TempDir())
	if _, err := s.Put("uploads/a.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete("uploads/a.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("uploads/a.txt"); !os.IsNotExist(err) {
		t.Fatalf("get after delete: %v", err)
	}
	if err := s.Delete("uploads/a.txt"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
