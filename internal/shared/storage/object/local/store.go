package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/util"
)

// ErrInvalidKey is returned for storage keys that escape the base directory.
var ErrInvalidKey = errors.New("invalid storage key")

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir reports the directory documents are written to.
func (s *Store) Dir() string {
	return s.baseDir
}

// Save writes the reader to baseDir under the sanitized file name. An existing
// file with the same name is replaced, so re-exporting a résumé updates it in
// place.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize file name: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", 0, "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, sanitizedName)
	tmp, err := os.CreateTemp(s.baseDir, ".export-*")
	if err != nil {
		return "", 0, "", fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		tmp.Close()
		return "", 0, "", fmt.Errorf("read sniff: %w", readErr)
	}

	mimeType := http.DetectContentType(sniff[:n])

	size := int64(0)
	if n > 0 {
		if _, err := tmp.Write(sniff[:n]); err != nil {
			tmp.Close()
			return "", 0, "", fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return "", 0, "", fmt.Errorf("write body: %w", err)
	}
	size += written

	if err := tmp.Close(); err != nil {
		return "", 0, "", fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", 0, "", fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		return "", 0, "", fmt.Errorf("rename: %w", err)
	}

	return sanitizedName, size, mimeType, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(storageKey)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, ErrInvalidKey
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", object.ErrNotFound, storageKey)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

var _ object.ObjectStore = (*Store)(nil)
