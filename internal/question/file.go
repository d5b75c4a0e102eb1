package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

// File stores the bank as an indented JSON array.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	if path == "" {
		path = "./data/questions.json"
	}
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

func (f *File) Load(_ context.Context) ([]mcq.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []mcq.Question{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("question: read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return []mcq.Question{}, nil
	}
	var qs []mcq.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("question: decode %s: %w", f.path, err)
	}
	if qs == nil {
		qs = []mcq.Question{}
	}
	return qs, nil
}

func (f *File) Save(_ context.Context, qs []mcq.Question) error {
	if qs == nil {
		qs = []mcq.Question{}
	}
	return f.write(qs)
}

func (f *File) Clear(_ context.Context) error {
	return f.write([]mcq.Question{})
}

func (f *File) write(qs []mcq.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.MarshalIndent(qs, "", "  ")
	if err != nil {
		return fmt.Errorf("question: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("question: mkdir: %w", err)
	}
	// write-then-rename so a failed write never truncates the bank
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("question: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("question: rename %s: %w", tmp, err)
	}
	return nil
}
