package middleware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Equal(t, "", computeFileHash("non_existent_file.css"))
}

func TestAssetVersions(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "app.css"), []byte(".modal{}"), 0644))

	loadAssetVersions(staticDir)

	cssVersion := AssetVersion("css/app.css")
	assert.Len(t, cssVersion, 8)
	assert.Equal(t, "/static/css/app.css?v="+cssVersion, AssetURL("css/app.css"))

	// Missing files fall back to "1"
	assert.Equal(t, "1", AssetVersion("js/app.js"))
	assert.Equal(t, "1", AssetVersion("unknown.js"))
}
