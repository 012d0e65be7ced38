package service

import (
	"bytes"
	"context"
	"io"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockGenerativeClient struct {
	called       bool
	lastModel    string
	lastParts    []*genai.Part
	generateFunc func(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

func (m *mockGenerativeClient) GenerateParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	m.called = true
	m.lastModel = model
	m.lastParts = parts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts)
	}
	return &genai.GenerateContentResponse{}, nil
}

type mockArtifactRepository struct {
	saved   map[string][]byte
	saveErr error
}

func newMockArtifactRepository() *mockArtifactRepository {
	return &mockArtifactRepository{saved: make(map[string][]byte)}
}

func (m *mockArtifactRepository) SaveArtifact(id string, data io.Reader) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.saved[id] = b
	return nil
}

func (m *mockArtifactRepository) OpenArtifact(id string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.saved[id])), nil
}

func (m *mockArtifactRepository) DeleteArtifact(id string) error {
	delete(m.saved, id)
	return nil
}

func (m *mockArtifactRepository) ArtifactPath(id string) string {
	return "/tmp/" + id + ".png"
}

func (m *mockArtifactRepository) ArtifactExists(id string) bool {
	_, ok := m.saved[id]
	return ok
}

// responseWith builds a single-candidate model response from parts.
func responseWith(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: parts},
		}},
	}
}

func textPart(text string) *genai.Part {
	return &genai.Part{Text: text}
}

func imagePart(data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}}
}
