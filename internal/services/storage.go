package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// BatchStorage scopes uploaded résumé bytes to disk for the duration of one
// analysis request. The batch directory is released with Cleanup on every exit
// path; individual files are additionally removed as soon as their processing
// finishes.
type BatchStorage interface {
	NewBatchDir() (string, error)
	SaveUpload(dir string, filename string, content []byte) (string, error)
	RemoveUpload(path string)
	Cleanup(dir string)
}

type batchStorage struct {
	tempPath string
}

func NewBatchStorage(tempPath string) BatchStorage {
	return &batchStorage{
		tempPath: tempPath,
	}
}

// NewBatchDir implements BatchStorage.
func (s *batchStorage) NewBatchDir() (string, error) {
	if err := os.MkdirAll(s.tempPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp root: %w", err)
	}

	dir, err := os.MkdirTemp(s.tempPath, "resume-batch-*")
	if err != nil {
		return "", fmt.Errorf("failed to create batch directory: %w", err)
	}

	return dir, nil
}

// SaveUpload implements BatchStorage. Only the base name of the uploaded
// filename is used, so a crafted filename cannot escape the batch directory.
func (s *batchStorage) SaveUpload(dir string, filename string, content []byte) (string, error) {
	path := filepath.Join(dir, filepath.Base(filename))

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return path, nil
}

// RemoveUpload implements BatchStorage.
func (s *batchStorage) RemoveUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Failed to remove temp file %s: %v\n", path, err)
	}
}

// Cleanup implements BatchStorage.
func (s *batchStorage) Cleanup(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("⚠️  Failed to remove batch directory %s: %v\n", dir, err)
	}
}
