package picture

import (
	"bytes"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
)

// Detect checks that data is a decodable raster image and returns its
// detected MIME type. The bytes themselves are never modified: the caller
// forwards the original buffer to the API.
func Detect(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return http.DetectContentType(data), nil
}

// EncodePNG renders an in-memory image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
