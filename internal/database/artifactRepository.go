package database

import (
	"io"
	"path/filepath"

	"github.com/ds124wfegd/gemini-studio/internal/pkg/storage"
)

func NewArtifactRepository(storage storage.FileStorage) ArtifactRepository {
	return &fileArtifactRepository{storage: storage}
}

func (r *fileArtifactRepository) SaveArtifact(id string, data io.Reader) error {
	return r.storage.Save(r.relPath(id), data)
}

func (r *fileArtifactRepository) OpenArtifact(id string) (io.ReadCloser, error) {
	return r.storage.Open(r.relPath(id))
}

func (r *fileArtifactRepository) DeleteArtifact(id string) error {
	return r.storage.Remove(r.relPath(id))
}

func (r *fileArtifactRepository) ArtifactPath(id string) string {
	return r.storage.FullPath(r.relPath(id))
}

func (r *fileArtifactRepository) ArtifactExists(id string) bool {
	return r.storage.Exists(r.relPath(id))
}

func (r *fileArtifactRepository) relPath(id string) string {
	return filepath.Join("generated", id+".png")
}
