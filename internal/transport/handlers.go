package transport

import (
	"github.com/ds124wfegd/gemini-studio/internal/database"
	"github.com/ds124wfegd/gemini-studio/internal/service"
)

type GenerationHandler struct {
	service       service.GenerationService
	repo          database.ArtifactRepository
	maxUploadSize int64
}

func NewGenerationHandler(service service.GenerationService, repo database.ArtifactRepository, maxUploadSize int64) *GenerationHandler {
	return &GenerationHandler{
		service:       service,
		repo:          repo,
		maxUploadSize: maxUploadSize,
	}
}
