package services

import (
	"errors"
	"io"
	"io/fs"
	"time"
	"unicode/utf8"

	"caffeine-editor/internal/logger"

	"fyne.io/fyne/v2/storage"
)

// FileStore reads and writes whole text files.
type FileStore interface {
	Read(path string) (string, error)
	Write(path, text string) error
}

// DiskStore is the FileStore for local files. It goes through Fyne's storage
// repository, so a Fyne app (or the test app) must exist. Writes overwrite
// the target in place.
type DiskStore struct {
	logger logger.Logger
}

// NewDiskStore creates a new file store. A nil logger discards output.
func NewDiskStore(log logger.Logger) *DiskStore {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &DiskStore{logger: log}
}

// Read returns the file content decoded as UTF-8.
func (s *DiskStore) Read(path string) (string, error) {
	start := time.Now()

	reader, err := storage.Reader(storage.NewFileURI(path))
	if err != nil {
		return "", s.fail("read", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", s.fail("read", path, err)
	}
	if !utf8.Valid(data) {
		return "", s.fail("read", path, errNotUTF8)
	}

	s.logger.Debug("FileStore", "file read", map[string]interface{}{
		"path":     path,
		"bytes":    len(data),
		"duration": time.Since(start).String(),
	})
	return string(data), nil
}

// Write creates or truncates path and stores text in it.
func (s *DiskStore) Write(path, text string) error {
	start := time.Now()

	writer, err := storage.Writer(storage.NewFileURI(path))
	if err != nil {
		return s.fail("write", path, err)
	}
	if _, err := io.WriteString(writer, text); err != nil {
		writer.Close()
		return s.fail("write", path, err)
	}
	if err := writer.Close(); err != nil {
		return s.fail("write", path, err)
	}

	s.logger.Debug("FileStore", "file written", map[string]interface{}{
		"path":     path,
		"bytes":    len(text),
		"duration": time.Since(start).String(),
	})
	return nil
}

// fail wraps cause in an IOError. Callers decide how to report it, so the
// store only traces it.
func (s *DiskStore) fail(op, path string, cause error) error {
	// The path is already part of IOError.
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	err := &IOError{Op: op, Path: path, Err: cause}
	s.logger.Debug("FileStore", "file operation failed", map[string]interface{}{
		"op":    op,
		"path":  path,
		"error": cause.Error(),
	})
	return err
}
