package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// ErrBlobNotFound is returned by Move when the source key does not exist
var ErrBlobNotFound = errors.New("blob not found")

//go:generate mockgen -source=blobstore.go -destination=../mocks/storage_mocks.go -package=mocks

// BlobStore is a path-addressed file store. Keys are slash-separated and
// relative to the store root.
type BlobStore interface {
	Save(key string, r io.Reader) error
	Move(src, dst string) error
	Exists(key string) (bool, error)
	Remove(key string) error
	RemoveAll(key string) error
	MkdirAll(key string) error
}

// FSBlobStore implements BlobStore over an afero filesystem
type FSBlobStore struct {
	fs afero.Fs
}

// Ensure FSBlobStore implements BlobStore
var _ BlobStore = (*FSBlobStore)(nil)

// NewFSBlobStore roots a store at dir on the local disk, creating dir if needed
func NewFSBlobStore(dir string) (*FSBlobStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &FSBlobStore{fs: afero.NewBasePathFs(osFs, dir)}, nil
}

// NewMemBlobStore returns an in-memory store
func NewMemBlobStore() *FSBlobStore {
	return &FSBlobStore{fs: afero.NewMemMapFs()}
}

// NewBlobStoreFromFs wraps an existing afero filesystem
func NewBlobStoreFromFs(fs afero.Fs) *FSBlobStore {
	return &FSBlobStore{fs: fs}
}

// Fs exposes the underlying filesystem, e.g. for serving files over HTTP
func (s *FSBlobStore) Fs() afero.Fs {
	return s.fs
}

// Save writes r to key, creating parent directories
func (s *FSBlobStore) Save(key string, r io.Reader) error {
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return err
	}
	f, err := s.fs.Create(key)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Move renames src to dst, creating dst's parent directories
func (s *FSBlobStore) Move(src, dst string) error {
	ok, err := s.Exists(src)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBlobNotFound
	}
	if err := s.fs.MkdirAll(path.Dir(dst), 0o755); err != nil {
		return err
	}
	return s.fs.Rename(src, dst)
}

// Exists reports whether key exists
func (s *FSBlobStore) Exists(key string) (bool, error) {
	return afero.Exists(s.fs, key)
}

// Remove deletes a single file; a missing file is not an error
func (s *FSBlobStore) Remove(key string) error {
	err := s.fs.Remove(key)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// RemoveAll deletes key and everything below it
func (s *FSBlobStore) RemoveAll(key string) error {
	return s.fs.RemoveAll(key)
}

// MkdirAll creates a directory and its parents
func (s *FSBlobStore) MkdirAll(key string) error {
	return s.fs.MkdirAll(key, 0o755)
}
