package handlers

import (
	"net/http"

	"github.com/samratmajumder/oksaar-social-assistant/internal/config"
	"github.com/samratmajumder/oksaar-social-assistant/internal/services"
)

var mediaService *services.MediaService

// InitMediaService wires up the Cloudinary-backed media service.
func InitMediaService(cfg *config.Config) error {
	service, err := services.NewMediaService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	mediaService = service
	return nil
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadMedia handles custom post image uploads. Multipart field "file",
// optional ?folder= (default "oksaar").
func UploadMedia(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}

	if mediaService == nil {
		respondMessage(w, http.StatusInternalServerError, "Media service not configured")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondMessage(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "No file provided")
		return
	}
	file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "oksaar"
	}

	url, err := mediaService.Upload(r.Context(), fileHeader, folder)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to upload file: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
