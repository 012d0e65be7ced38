package entity

import "errors"

var (
	// Request errors
	ErrEmptyPrompt      = errors.New("prompt must not be empty")
	ErrUndecodableImage = errors.New("uploaded image is not a decodable raster format")

	// Artifact errors
	ErrArtifactNotFound = errors.New("artifact not found")
)
