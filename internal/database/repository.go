package database

import (
	"io"

	"github.com/ds124wfegd/gemini-studio/internal/pkg/storage"
)

// ArtifactRepository keeps generated images on disk so the download
// endpoint can serve the exact bytes the model returned. It is not a
// result history: one artifact per generation, addressed by id only.
type ArtifactRepository interface {
	SaveArtifact(id string, data io.Reader) error
	OpenArtifact(id string) (io.ReadCloser, error)
	DeleteArtifact(id string) error
	ArtifactPath(id string) string
	ArtifactExists(id string) bool
}

type fileArtifactRepository struct {
	storage storage.FileStorage
}
