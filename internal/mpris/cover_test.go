package mpris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("img"), 0o600))
	return p
}

func TestFindCover(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "cover.jpg")

	assert.Equal(t, want, FindCover(filepath.Join(dir, "track.mp3")))
}

func TestFindCover_NotFound(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "track.mp3")

	assert.Empty(t, FindCover(filepath.Join(dir, "track.mp3")))
	assert.Empty(t, FindCover(filepath.Join(dir, "missing", "track.mp3")))
}

func TestFindCover_Priority(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "folder.jpg")
	want := touch(t, dir, "cover.png")

	assert.Equal(t, want, FindCover(filepath.Join(dir, "track.flac")))
}

func TestFindCover_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "Folder.JPG")

	assert.Equal(t, want, FindCover(filepath.Join(dir, "track.flac")))
}

func TestFindCover_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cover.jpg"), 0o700))

	assert.Empty(t, FindCover(filepath.Join(dir, "track.flac")))
}
