package database

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds124wfegd/gemini-studio/internal/pkg/storage"
)

// TestArtifactRoundTrip проверяет, что сохранённый артефакт читается
// обратно байт в байт
func TestArtifactRoundTrip(t *testing.T) {
	repo := NewArtifactRepository(storage.NewFileStorage(t.TempDir()))

	id := uuid.New().String()
	original := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3, 4, 5}

	require.NoError(t, repo.SaveArtifact(id, bytes.NewReader(original)))
	assert.True(t, repo.ArtifactExists(id))

	reader, err := repo.OpenArtifact(id)
	require.NoError(t, err)
	defer reader.Close()

	restored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, original, restored, "stored bytes must be identical to the inline data")
}

func TestArtifactDelete(t *testing.T) {
	repo := NewArtifactRepository(storage.NewFileStorage(t.TempDir()))

	id := uuid.New().String()
	require.NoError(t, repo.SaveArtifact(id, bytes.NewReader([]byte("data"))))
	require.True(t, repo.ArtifactExists(id))

	require.NoError(t, repo.DeleteArtifact(id))
	assert.False(t, repo.ArtifactExists(id))

	_, err := repo.OpenArtifact(id)
	assert.Error(t, err)
}

func TestArtifactPathLayout(t *testing.T) {
	dir := t.TempDir()
	repo := NewArtifactRepository(storage.NewFileStorage(dir))

	path := repo.ArtifactPath("abc")
	assert.Contains(t, path, dir)
	assert.Contains(t, path, "generated")
	assert.Contains(t, path, "abc.png")
}
