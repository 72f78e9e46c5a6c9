package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Static assets that get a cache-busting query string
const (
	AssetCSS     = "css/style.css"
	AssetAppJS   = "js/app.js"
	AssetFavicon = "images/favicon.svg"
)

var trackedAssets = []string{AssetCSS, AssetAppJS, AssetFavicon}

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes under staticDir for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(trackedAssets))
	for _, asset := range trackedAssets {
		version := computeFileHash(filepath.Join(staticDir, asset))
		if version == "" {
			version = "1"
		}
		versions[asset] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	zap.L().Info("asset versions initialized", zap.Any("versions", versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		zap.L().Warn("failed to open file for hashing", zap.String("path", path), zap.Error(err))
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		zap.L().Warn("failed to hash file", zap.String("path", path), zap.Error(err))
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash for a tracked asset, or "1" before initialization.
// ctx is unused.
func GetAssetVersion(ctx context.Context, asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the /static URL for an asset with its version appended
func AssetURL(ctx context.Context, asset string) string {
	return "/static/" + asset + "?v=" + GetAssetVersion(ctx, asset)
}
