package filestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrHandleNotFound is returned when a stored blob no longer exists.
var ErrHandleNotFound = errors.New("file handle not found")

// Store is an opaque blob store. Callers persist the returned handle and
// never interpret it; the ledger/candidate rows carry handles, not paths.
//
//go:generate mockgen -source=filestore.go -destination=mock/filestore_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (handle string, err error)
	Open(ctx context.Context, handle string) (rc io.ReadCloser, originalName string, err error)
}

type diskStore struct {
	baseDir string
}

// NewDiskStore stores blobs as flat files under baseDir. The handle embeds
// a uuid prefix so identical filenames never collide.
func NewDiskStore(baseDir string) (Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &diskStore{baseDir: baseDir}, nil
}

func (s *diskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	handle := uuid.NewString() + "_" + sanitizeName(originalName)

	f, err := os.Create(filepath.Join(s.baseDir, handle))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return handle, nil
}

func (s *diskStore) Open(ctx context.Context, handle string) (io.ReadCloser, string, error) {
	// handle berasal dari Save, tolak apapun yang berbentuk path
	if handle == "" || strings.ContainsAny(handle, `/\`) {
		return nil, "", ErrHandleNotFound
	}

	f, err := os.Open(filepath.Join(s.baseDir, handle))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrHandleNotFound
		}
		return nil, "", err
	}
	return f, OriginalName(handle), nil
}

// OriginalName recovers the uploaded filename from a handle.
func OriginalName(handle string) string {
	if _, name, ok := strings.Cut(handle, "_"); ok && name != "" {
		return name
	}
	return handle
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
