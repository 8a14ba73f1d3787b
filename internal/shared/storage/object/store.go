package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore saves exported documents and reads them back by storage key.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
