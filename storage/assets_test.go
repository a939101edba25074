package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStore_Download(t *testing.T) {
	dir := t.TempDir()
	a := NewAssetStore(dir, "")

	_, err := a.DownloadPath()
	assert.ErrorIs(t, err, ErrNotFound)

	want := filepath.Join(dir, DownloadName)
	require.NoError(t, os.WriteFile(want, []byte("PK"), 0o644))
	got, err := a.DownloadPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAssetStore_DownloadAbsolutePath(t *testing.T) {
	pkg := filepath.Join(t.TempDir(), "beta.zip")
	require.NoError(t, os.WriteFile(pkg, []byte("PK"), 0o644))

	got, err := NewAssetStore(t.TempDir(), pkg).DownloadPath()
	require.NoError(t, err)
	assert.Equal(t, pkg, got)
}

func TestAssetStore_HeroPrefersJPEG(t *testing.T) {
	dir := t.TempDir()
	a := NewAssetStore(dir, "")

	_, err := a.HeroPath()
	assert.ErrorIs(t, err, ErrNotFound)

	png := filepath.Join(dir, "hero.png")
	require.NoError(t, os.WriteFile(png, nil, 0o644))
	got, err := a.HeroPath()
	require.NoError(t, err)
	assert.Equal(t, png, got)

	jpg := filepath.Join(dir, "hero.jpg")
	require.NoError(t, os.WriteFile(jpg, nil, 0o644))
	got, err = a.HeroPath()
	require.NoError(t, err)
	assert.Equal(t, jpg, got)
}
