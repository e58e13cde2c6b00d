package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Versioned assets, relative to the static directory
var versionedAssets = []string{
	"css/app.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions     = map[string]string{}
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		loadAssetVersions(staticDir)
	})
}

func loadAssetVersions(staticDir string) {
	versions := make(map[string]string, len(versionedAssets))
	for _, asset := range versionedAssets {
		if v := computeFileHash(filepath.Join(staticDir, asset)); v != "" {
			versions[asset] = v
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()
	log.Printf("[INFO] Asset versions initialized: %d of %d files", len(versions), len(versionedAssets))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash for a static asset, or "1" when unknown
func AssetVersion(asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[asset]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the cache-busted /static URL of an asset
func AssetURL(asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(asset)
}
