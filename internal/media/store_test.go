package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "media"), filepath.Join(t.TempDir(), "daily"))
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndList(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("foto.JPG", strings.NewReader("fake-image"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"), "Extension should be preserved lowercase: %s", name)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)
}

func TestStore_Save_RejectsUnknownType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("script.sh", strings.NewReader("#!/bin/sh"))
	assert.ErrorIs(t, err, domain.ErrInvalidMediaType)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_FilePath_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../secret.jpg", "a/b.jpg", ".hidden.jpg", ""} {
		_, err := store.FilePath(name)
		assert.ErrorIs(t, err, domain.ErrMediaNotFound, "name %q should be rejected", name)
	}
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("video.mp4", strings.NewReader("fake-video"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	assert.ErrorIs(t, store.Remove(name), domain.ErrMediaNotFound)
}

func TestStore_RandomAndDiscard(t *testing.T) {
	store := newTestStore(t)

	// Empty pool yields no path and no error.
	path, err := store.Random()
	require.NoError(t, err)
	assert.Empty(t, path)

	name, err := store.Save("foto.png", strings.NewReader("fake-image"))
	require.NoError(t, err)

	path, err = store.Random()
	require.NoError(t, err)
	assert.Equal(t, name, filepath.Base(path))

	require.NoError(t, store.Discard(path))

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names, "Discarded media must leave the pool")

	// Discarding twice is harmless.
	assert.NoError(t, store.Discard(path))
}

func TestStore_DailyVideo(t *testing.T) {
	store := newTestStore(t)

	// No videos at all.
	_, err := store.DailyVideo(10)
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)

	morning := filepath.Join(store.dailyDir, "bomdia.mp4")
	evening := filepath.Join(store.dailyDir, "bomnoite.mp4")
	require.NoError(t, os.WriteFile(morning, []byte("m"), 0o644))
	require.NoError(t, os.WriteFile(evening, []byte("e"), 0o644))

	tests := []struct {
		hour int
		want string
	}{
		{hour: 7, want: morning},
		{hour: 17, want: morning},
		{hour: 18, want: evening},
		{hour: 5, want: evening},
		{hour: 23, want: evening},
	}
	for _, tt := range tests {
		got, err := store.DailyVideo(tt.hour)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "hour %d", tt.hour)
	}
}

func TestStore_DailyVideo_Fallback(t *testing.T) {
	store := newTestStore(t)

	other := filepath.Join(store.dailyDir, "qualquer.mp4")
	require.NoError(t, os.WriteFile(other, []byte("v"), 0o644))

	got, err := store.DailyVideo(7)
	require.NoError(t, err)
	assert.Equal(t, other, got, "Missing named video should fall back to any mp4")
}
