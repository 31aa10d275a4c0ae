package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in its own file under a base directory. It is the
// default backend on a field device.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	// Resolve to an absolute path so the traversal guard in pathFor works
	// for relative bases like "./data".
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store directory: %w", err)
	}

	// Create base directory if not exists
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &FileStore{basePath: abs}, nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	cleanKey := filepath.Clean(key)
	fullPath := filepath.Join(s.basePath, cleanKey+".json")

	// Ensure file is within basePath. The separator-suffixed compare also
	// keeps a sibling directory like basePath+"bad" out of reach.
	if !strings.HasPrefix(fullPath, s.basePath+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid store key: %s", key)
	}
	return fullPath, nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	fullPath, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	fullPath, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to a temp file first so a crash mid-write never leaves a
	// truncated value behind.
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	fullPath, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
