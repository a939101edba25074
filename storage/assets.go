package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DownloadName is the file name offered to the browser for the app package.
const DownloadName = "raw2hdr.zip"

// AssetStore locates the files the site serves from disk: the app package
// and the hero photo.
type AssetStore struct {
	root     string
	download string
}

// NewAssetStore serves assets from root. download is the package path,
// relative to root unless absolute.
func NewAssetStore(root, download string) *AssetStore {
	if download == "" {
		download = DownloadName
	}
	if !filepath.IsAbs(download) {
		download = filepath.Join(root, download)
	}
	return &AssetStore{root: root, download: download}
}

// DownloadPath returns the app package path, or ErrNotFound if it has not
// been published.
func (a *AssetStore) DownloadPath() (string, error) {
	info, err := os.Stat(a.download)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("download %s: %w", a.download, ErrNotFound)
	}
	return a.download, nil
}

// HeroPath returns the path to the hero photo (prefers JPEG, falls back to
// PNG), or ErrNotFound when neither exists.
func (a *AssetStore) HeroPath() (string, error) {
	for _, name := range []string{"hero.jpg", "hero.jpeg", "hero.png"} {
		p := filepath.Join(a.root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("hero image in %s: %w", a.root, ErrNotFound)
}
