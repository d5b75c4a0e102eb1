package storage

import (
	"errors"
	"io"
)

var ErrInvalidKey = errors.New("storage: invalid key")

// BlobStore keeps raw uploaded documents.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error // missing keys are not an error
}
