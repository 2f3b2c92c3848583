// Package local_test tests the local filesystem blob store.
package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/sitegen/internal/storage/local"
)

func TestNew(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		tempDir := t.TempDir()
		store, err := local.New(local.Config{BaseDir: tempDir})
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("MissingBaseDir", func(t *testing.T) {
		_, err := local.New(local.Config{})
		assert.Error(t, err)
	})

	t.Run("CreatesMissingDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "public", "static")
		_, err := local.New(local.Config{BaseDir: dir})
		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("BaseDirIsNotADirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
		_, err := local.New(local.Config{BaseDir: file})
		assert.Error(t, err)
	})
}

func TestPutObject(t *testing.T) {
	tempDir := t.TempDir()
	store, err := local.New(local.Config{BaseDir: tempDir})
	require.NoError(t, err)

	t.Run("ValidPut", func(t *testing.T) {
		uri, err := store.PutObject(context.Background(), "sitemap.xml", "application/xml", strings.NewReader("<urlset/>"))
		require.NoError(t, err)
		assert.Equal(t, "file://"+filepath.Join(tempDir, "sitemap.xml"), uri)

		// #nosec G304 -- test reads from the controlled temp directory.
		data, err := os.ReadFile(filepath.Join(tempDir, "sitemap.xml"))
		require.NoError(t, err)
		assert.Equal(t, "<urlset/>", string(data))
	})

	t.Run("ReplacesPriorContent", func(t *testing.T) {
		_, err := store.PutObject(context.Background(), "llms.txt", "text/plain", strings.NewReader("a much longer first version"))
		require.NoError(t, err)
		_, err = store.PutObject(context.Background(), "llms.txt", "text/plain", strings.NewReader("short"))
		require.NoError(t, err)

		// #nosec G304 -- test reads from the controlled temp directory.
		data, err := os.ReadFile(filepath.Join(tempDir, "llms.txt"))
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))

		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file %s left behind", e.Name())
		}
	})

	t.Run("NestedPath", func(t *testing.T) {
		uri, err := store.PutObject(context.Background(), "a/b/robots.txt", "text/plain", strings.NewReader("User-agent: *"))
		require.NoError(t, err)
		assert.Equal(t, "file://"+filepath.Join(tempDir, "a/b/robots.txt"), uri)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := store.PutObject(context.Background(), "", "text/plain", strings.NewReader("data"))
		assert.Error(t, err)
	})

	t.Run("PathTraversal", func(t *testing.T) {
		_, err := store.PutObject(context.Background(), "../escape.txt", "text/plain", strings.NewReader("data"))
		assert.Error(t, err)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := store.PutObject(ctx, "canceled.txt", "text/plain", strings.NewReader("data"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
