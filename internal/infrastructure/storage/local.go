package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalAttachmentStore keeps attachments on the local filesystem.
// Keys map to file paths under the configured root directory.
type LocalAttachmentStore struct {
	root string
}

// NewLocalAttachmentStore creates the root directory if needed
func NewLocalAttachmentStore(root string) (*LocalAttachmentStore, error) {
	if root == "" {
		return nil, errors.New("storage root path is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalAttachmentStore{root: root}, nil
}

// Put writes the attachment to disk, creating parent directories as needed
func (s *LocalAttachmentStore) Put(ctx context.Context, key string, data io.Reader, contentType string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create attachment directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	return nil
}

// Open opens the attachment for reading
func (s *LocalAttachmentStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("attachment %q not found", key)
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the attachment; deleting a missing key is not an error
func (s *LocalAttachmentStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether the attachment is present
func (s *LocalAttachmentStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// resolve maps a key to a path under root and rejects traversal attempts
func (s *LocalAttachmentStore) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

var _ AttachmentStore = (*LocalAttachmentStore)(nil)
