package handlers

import (
	"net/http"
	"strings"

	"accommodation-portal-backend/internal/auth"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageHandler handles image uploads
type ImageHandler struct {
	imageService   service.ImageServiceInterface
	maxUploadBytes int64
}

// NewImageHandler creates a new image handler; maxUploadBytes <= 0 disables the size check
func NewImageHandler(imageService service.ImageServiceInterface, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{
		imageService:   imageService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload handles POST /api/sdaowner/upload_image
// @Summary Upload an image
// @Description Stores an image file for the caller. With accommodation_id (form field or query) the file goes straight into that accommodation's images folder; otherwise it waits in the caller's folder until attached.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param accommodation_id formData string false "Accommodation ID"
// @Success 201 {object} service.UploadImageResponse
// @Failure 400 {object} ErrorResponse "No file provided or file type not allowed"
// @Failure 404 {object} ErrorResponse "Accommodation not found"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/sdaowner/upload_image [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	req := &service.UploadImageRequest{
		Filename: header.Filename,
		Content:  file,
	}

	rawID := strings.TrimSpace(c.PostForm("accommodation_id"))
	if rawID == "" {
		rawID = strings.TrimSpace(c.Query("accommodation_id"))
	}
	if rawID != "" {
		// an unparsable id uploads unattached
		if id, err := uuid.Parse(rawID); err == nil {
			req.AccommodationID = &id
		} else {
			logger.WithContext(c).Warnf("ignoring invalid accommodation_id %q on upload", rawID)
		}
	}

	resp, err := h.imageService.Upload(c, ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusCreated, resp)
}
