package filestore

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaver_SaveArtifact(t *testing.T) {
	t.Run("streams the artifact into the destination directory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("torrent-bytes"))
		}))
		defer server.Close()

		dir := t.TempDir()
		saver := NewSaver(dir)

		require.NoError(t, saver.SaveArtifact(t.Context(), server.URL, "item.torrent"))

		content, err := os.ReadFile(filepath.Join(dir, "item.torrent"))
		require.NoError(t, err)
		assert.Equal(t, "torrent-bytes", string(content))
	})

	t.Run("strips path separators from the file name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("x"))
		}))
		defer server.Close()

		dir := t.TempDir()
		saver := NewSaver(dir)

		require.NoError(t, saver.SaveArtifact(t.Context(), server.URL, "../../../etc/evil"))

		_, err := os.Stat(filepath.Join(dir, "evil"))
		assert.NoError(t, err)
	})

	t.Run("non-200 responses fail the save", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		saver := NewSaver(t.TempDir())

		err := saver.SaveArtifact(t.Context(), server.URL, "item.torrent")
		require.Error(t, err)
	})

	t.Run("unreachable artifact URL fails the save", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		saver := NewSaver(t.TempDir())

		err := saver.SaveArtifact(t.Context(), server.URL, "item.torrent")
		require.Error(t, err)
	})
}
