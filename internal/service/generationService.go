package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/ds124wfegd/gemini-studio/internal/entity"
	"github.com/ds124wfegd/gemini-studio/internal/pkg/picture"
)

// Generate performs exactly one call to the model and classifies the
// response. Classification is first match wins: an inline-data part makes
// the result an image and any text parts in the same response are
// discarded; otherwise the first non-empty text part makes it text; a
// response with neither produces the generic no-output text.
func (s *generationService) Generate(ctx context.Context, req entity.GenerationRequest) (*entity.GenerationResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		// Валидация до обращения к API
		return nil, entity.ErrEmptyPrompt
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}

	if req.HasImage() {
		mimeType := req.ImageMIME
		detected, err := picture.Detect(req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrUndecodableImage, err)
		}
		if mimeType == "" {
			mimeType = detected
		}

		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: mimeType,
				Data:     req.ImageData,
			},
		})
	}

	resp, err := s.client.GenerateParts(ctx, ModelName, parts)
	if err != nil {
		return nil, fmt.Errorf("generation call failed: %w", err)
	}

	return s.classify(resp)
}

func (s *generationService) classify(resp *genai.GenerateContentResponse) (*entity.GenerationResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		logrus.Warn("model response carried no candidates")
		return &entity.GenerationResult{Kind: entity.KindText, Text: entity.NoOutputMessage}, nil
	}

	parts := resp.Candidates[0].Content.Parts

	// Сначала ищем изображение: оно имеет приоритет над текстом
	for _, part := range parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return s.imageResult(part.InlineData.Data)
		}
	}

	for _, part := range parts {
		if part.Text != "" {
			return &entity.GenerationResult{Kind: entity.KindText, Text: part.Text}, nil
		}
	}

	return &entity.GenerationResult{Kind: entity.KindText, Text: entity.NoOutputMessage}, nil
}

func (s *generationService) imageResult(data []byte) (*entity.GenerationResult, error) {
	id := uuid.New().String()

	// Байты сохраняются как есть, чтобы скачанный файл совпадал с ответом модели
	if err := s.repo.SaveArtifact(id, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to store generated image: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"artifact_id": id,
		"size_bytes":  len(data),
	}).Info("Stored generated image")

	return &entity.GenerationResult{
		ID:    id,
		Kind:  entity.KindImage,
		Image: data,
	}, nil
}
