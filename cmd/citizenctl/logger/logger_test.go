package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	closeFn, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestDefaultLoggerDiscards(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	_, err := Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug})
	require.NoError(t, err)
	require.True(t, L.Enabled(t.Context(), slog.LevelInfo))

	_, err = Init(Options{Enabled: false})
	require.NoError(t, err)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(t.Context(), level), "level %s", level)
	}
	L.Error("dropped")
	assert.Empty(t, buf.String())
}

func TestInit_Writer(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	_, err := Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug, JSON: true})
	require.NoError(t, err)

	L.Debug("added", "id", 7)
	assert.Contains(t, buf.String(), `"msg":"added"`)
	assert.Contains(t, buf.String(), `"id":7`)
}

func TestInit_LogDir(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	dir := t.TempDir()
	old := filepath.Join(dir, logPrefix+"2000-01-01"+logSuffix)
	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))

	closeFn, err := Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelInfo})
	require.NoError(t, err)
	L.Info("hello")
	require.NoError(t, closeFn())

	assert.NoFileExists(t, old, "expired log should be removed")
	assert.FileExists(t, unrelated)

	today := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
