package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Equal(t, "", computeFileHash("non_existent_file.css"))
}

func TestInitAssetVersions(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, AssetCSS), []byte("css"), 0644))

	InitAssetVersions(staticDir)
	ctx := context.Background()

	cssVersion := GetAssetVersion(ctx, AssetCSS)
	assert.Len(t, cssVersion, 8)
	assert.Equal(t, "/static/css/style.css?v="+cssVersion, AssetURL(ctx, AssetCSS))

	// Missing files and untracked assets fall back to "1"
	assert.Equal(t, "1", GetAssetVersion(ctx, AssetAppJS))
	assert.Equal(t, "1", GetAssetVersion(ctx, "js/unknown.js"))
}
