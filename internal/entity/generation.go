package entity

// ResultKind discriminates the two possible outcomes of one generation
// call: the model returned an image, or it returned text.
type ResultKind string

const (
	KindImage ResultKind = "image"
	KindText  ResultKind = "text"
)

// NoOutputMessage is shown when the model returned neither an image part
// nor a text part.
const NoOutputMessage = "The model did not return an image or text."

// GenerationRequest is the input of a single generation call. ImageData is
// optional; when present it must be decodable as a standard raster format.
type GenerationRequest struct {
	Prompt    string
	ImageData []byte
	ImageMIME string
}

func (r GenerationRequest) HasImage() bool {
	return len(r.ImageData) > 0
}

// GenerationResult is a tagged union: exactly one of Image or Text is
// populated, selected by Kind. ID is set only for image results and keys
// the stored artifact for download.
type GenerationResult struct {
	ID    string
	Kind  ResultKind
	Image []byte
	Text  string
}

func (r *GenerationResult) ShowImage() bool {
	return r.Kind == KindImage
}

func (r *GenerationResult) ShowText() bool {
	return r.Kind == KindText
}

// GenerateResponse is the wire shape consumed by the page script. The two
// visibility flags are mutually exclusive: exactly one is true.
type GenerateResponse struct {
	Kind        ResultKind `json:"kind"`
	ImageBase64 string     `json:"image_base64,omitempty"`
	ImageMIME   string     `json:"image_mime,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
	Text        string     `json:"text,omitempty"`
	ShowImage   bool       `json:"show_image"`
	ShowText    bool       `json:"show_text"`
}
