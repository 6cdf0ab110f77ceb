package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"caffeine-editor/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	test.NewApp()
	return NewDiskStore(nil)
}

type countingLogger struct {
	logger.NoOpLogger
	debugs int
	errors int
}

func (c *countingLogger) Debug(component, message string, fields map[string]interface{}) {
	c.debugs++
}

func (c *countingLogger) Error(component string, err error, fields map[string]interface{}) {
	c.errors++
}

func TestDiskStoreFailureIsNotLoggedAsError(t *testing.T) {
	test.NewApp()
	rec := &countingLogger{}
	store := NewDiskStore(rec)

	_, err := store.Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	assert.Zero(t, rec.errors)
	assert.Equal(t, 1, rec.debugs)
}

func TestDiskStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single line", "hello"},
		{"multi line", "first\nsecond\r\nthird\n"},
		{"unicode", "héllo wörld ☕ 日本語 🚀"},
		{"trailing whitespace", "  indented\t\n\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "file"+string(rune('a'+i))+".txt")

			require.NoError(t, store.Write(path, tt.text))
			got, err := store.Read(path)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
		})
	}
}

func TestDiskStoreWriteOverwrites(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "notes.txt")

	require.NoError(t, store.Write(path, "a much longer first version"))
	require.NoError(t, store.Write(path, "short"))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestDiskStoreReadMissingFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := store.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestDiskStoreReadDirectory(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read(t.TempDir())
	assert.ErrorIs(t, err, ErrIO)
}

func TestDiskStoreReadInvalidUTF8(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "binary.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	_, err := store.Read(path)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, errNotUTF8)
}

func TestDiskStoreWriteIntoMissingDirectory(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "a.txt")

	err := store.Write(path, "x")
	assert.ErrorIs(t, err, ErrIO)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}

func TestDiskStoreWriteReadOnlyFileLeavesContent(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o444))

	err := store.Write(path, "overwrite")
	assert.ErrorIs(t, err, ErrIO)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "keep me", string(data))
}
