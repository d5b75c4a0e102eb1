package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

// canonical cleans key as a slash path rooted at the store base, so "../"
// can never leave it.
func canonical(key string) (string, error) {
	k := strings.TrimPrefix(path.Clean("/"+key), "/")
	if k == "" || k == "." {
		return "", ErrInvalidKey
	}
	return k, nil
}

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	k, err := canonical(key)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.base, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return k, nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	k, err := canonical(key)
	if err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.base, filepath.FromSlash(k)))
}

func (s *FSStore) Delete(key string) error {
	k, err := canonical(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.base, filepath.FromSlash(k)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
