package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static")
	s, err := NewLocalStore(dir, "voice")
	require.NoError(t, err)
	assert.DirExists(t, dir)

	url, err := s.Save(context.Background(), "voice-a.mp3", []byte("ID3"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "/static/voice-a.mp3", url)

	b, err := os.ReadFile(filepath.Join(dir, "voice-a.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStoreRejectsBadNames(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), "voice")
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "../escape.mp3", []byte("x"), "audio/mpeg")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestLocalStoreCleanup(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "voice")
	require.NoError(t, err)
	ctx := context.Background()

	oldName := NewObjectName("voice", "mp3")
	freshName := NewObjectName("voice", "mp3")
	for _, name := range []string{oldName, freshName, "welcome.mp3"} {
		_, err := s.Save(ctx, name, []byte("x"), "audio/mpeg")
		require.NoError(t, err)
	}

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, oldName), past, past))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "welcome.mp3"), past, past))

	n, err := s.Cleanup(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.NoFileExists(t, filepath.Join(dir, oldName))
	assert.FileExists(t, filepath.Join(dir, freshName))
	assert.FileExists(t, filepath.Join(dir, "welcome.mp3"))
}
