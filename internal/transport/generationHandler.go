package transport

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/gemini-studio/internal/entity"
)

// Generate accepts a multipart form with a mandatory "prompt" field and an
// optional "image" file, runs one generation call and answers with exactly
// one of the two output slots visible. Request-scoped failures are rendered
// into the text slot (the same one a textual model answer uses), with the
// HTTP status telling the failure class apart.
func (h *GenerationHandler) Generate(c *gin.Context) {
	prompt := c.PostForm("prompt")

	req := entity.GenerationRequest{Prompt: prompt}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > h.maxUploadSize {
			respondText(c, http.StatusBadRequest, fmt.Sprintf("Image is too large (limit %d bytes).", h.maxUploadSize))
			return
		}

		src, err := file.Open()
		if err != nil {
			respondText(c, http.StatusBadRequest, "Could not read the uploaded image.")
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			respondText(c, http.StatusBadRequest, "Could not read the uploaded image.")
			return
		}

		req.ImageData = data
		req.ImageMIME = file.Header.Get("Content-Type")
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyPrompt):
			respondText(c, http.StatusBadRequest, "Please enter a prompt.")
		case errors.Is(err, entity.ErrUndecodableImage):
			respondText(c, http.StatusBadRequest, "The uploaded file is not a supported image.")
		default:
			logrus.Errorf("generation failed: %s", err.Error())
			respondText(c, http.StatusBadGateway, fmt.Sprintf("An API error occurred. Details: %s", err.Error()))
		}
		return
	}

	if result.ShowImage() {
		c.JSON(http.StatusOK, entity.GenerateResponse{
			Kind:        entity.KindImage,
			ImageBase64: base64.StdEncoding.EncodeToString(result.Image),
			ImageMIME:   "image/png",
			DownloadURL: "/download/" + result.ID,
			ShowImage:   true,
			ShowText:    false,
		})
		return
	}

	respondText(c, http.StatusOK, result.Text)
}

// Download serves a stored artifact as a file attachment.
func (h *GenerationHandler) Download(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	if !h.repo.ArtifactExists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity.ErrArtifactNotFound.Error()})
		return
	}

	c.FileAttachment(h.repo.ArtifactPath(id), "generated_image_"+id+".png")
}

// respondText fills the text output slot and hides the image one.
func respondText(c *gin.Context, status int, text string) {
	c.JSON(status, entity.GenerateResponse{
		Kind:      entity.KindText,
		Text:      text,
		ShowImage: false,
		ShowText:  true,
	})
}
