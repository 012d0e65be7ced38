package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		data     func(t *testing.T) []byte
		wantMIME string
		wantErr  bool
	}{
		{
			name: "valid png",
			data: func(t *testing.T) []byte {
				data, err := EncodePNG(newTestImage(16, 16))
				require.NoError(t, err)
				return data
			},
			wantMIME: "image/png",
		},
		{
			name: "valid jpeg",
			data: func(t *testing.T) []byte {
				var buf bytes.Buffer
				require.NoError(t, jpeg.Encode(&buf, newTestImage(16, 16), &jpeg.Options{Quality: 90}))
				return buf.Bytes()
			},
			wantMIME: "image/jpeg",
		},
		{
			name:    "garbage bytes",
			data:    func(t *testing.T) []byte { return []byte("this is not an image at all") },
			wantErr: true,
		},
		{
			name:    "empty input",
			data:    func(t *testing.T) []byte { return nil },
			wantErr: true,
		},
		{
			name: "truncated png",
			data: func(t *testing.T) []byte {
				data, err := EncodePNG(newTestImage(16, 16))
				require.NoError(t, err)
				return data[:20]
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := Detect(tt.data(t))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(newTestImage(10, 20))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

// newTestImage создает одноцветное изображение заданного размера
func newTestImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 160, B: 90, A: 255})
		}
	}
	return img
}
