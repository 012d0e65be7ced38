package service

import (
	"context"

	"github.com/ds124wfegd/gemini-studio/internal/database"
	"github.com/ds124wfegd/gemini-studio/internal/entity"
	"github.com/ds124wfegd/gemini-studio/internal/gemini"
)

// ModelName is the fixed model identifier every generation call targets.
const ModelName = "gemini-2.5-flash-image-preview"

type GenerationService interface {
	Generate(ctx context.Context, req entity.GenerationRequest) (*entity.GenerationResult, error)
}

type generationService struct {
	client gemini.GenerativeClient
	repo   database.ArtifactRepository
}

func NewGenerationService(client gemini.GenerativeClient, repo database.ArtifactRepository) GenerationService {
	return &generationService{
		client: client,
		repo:   repo,
	}
}
