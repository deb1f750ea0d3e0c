// Package docstore holds the raw uploaded documents. Items keep only a
// storage key; the bytes live here so the database never carries file
// payloads.
package docstore

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound indicates no document exists under the given key.
var ErrObjectNotFound = errors.New("document not found in storage")

// DocumentStore provides access to uploaded document payloads.
type DocumentStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
