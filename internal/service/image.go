package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageService stores uploaded image files and their master rows
type ImageService struct {
	store             repository.StoreInterface
	blobs             storage.BlobStore
	layout            storage.Layout
	allowedExtensions map[string]struct{}
	publicBaseURL     string
}

// NewImageService creates a new image service
func NewImageService(store repository.StoreInterface, blobs storage.BlobStore, layout storage.Layout, allowedExtensions []string, publicBaseURL string) *ImageService {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[ext] = struct{}{}
	}
	return &ImageService{
		store:             store,
		blobs:             blobs,
		layout:            layout,
		allowedExtensions: allowed,
		publicBaseURL:     publicBaseURL,
	}
}

// UploadImageRequest describes one uploaded file
type UploadImageRequest struct {
	Filename        string
	Content         io.Reader
	AccommodationID *uuid.UUID
}

// UploadImageResponse represents a stored image
type UploadImageResponse struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
	URL  string    `json:"url"`
}

// Upload saves the file under the owner's folder, or directly under an owned
// accommodation's images folder, and creates its Image row. The stored name
// is the sanitized original prefixed with a random id.
func (s *ImageService) Upload(ctx context.Context, ownerID uuid.UUID, req *UploadImageRequest) (*UploadImageResponse, error) {
	if req == nil || req.Content == nil || req.Filename == "" {
		return nil, apperrors.ErrNoFile
	}
	clean := storage.SanitizeFilename(req.Filename)
	if clean == "" {
		return nil, apperrors.ErrNoFile
	}
	if _, ok := s.allowedExtensions[storage.Extension(clean)]; !ok {
		return nil, apperrors.ErrInvalidExtension
	}

	owner := ownerID.String()
	filename := storage.UniqueFilename(clean)
	stored := s.layout.UnattachedPath(owner, filename)

	if req.AccommodationID != nil {
		if _, err := s.store.Accommodations().GetByIDAndOwner(*req.AccommodationID, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAccommodationNotFound
			}
			return nil, fmt.Errorf("load accommodation: %w", err)
		}
		stored = s.layout.ImagePath(owner, *req.AccommodationID, filename)
	}

	if err := s.blobs.Save(s.layout.Key(stored), req.Content); err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	img := &models.Image{Path: stored}
	if err := s.store.Images().Create(img); err != nil {
		if rmErr := s.blobs.Remove(s.layout.Key(stored)); rmErr != nil {
			logger.WithContext(ctx).WithError(rmErr).Warnf("failed to remove file %s after failed insert", stored)
		}
		return nil, apperrors.NewPersistenceError("create image", err)
	}

	logger.WithContext(ctx).Infof("stored image %s at %s", img.ID, stored)
	return &UploadImageResponse{
		ID:   img.ID,
		Path: stored,
		URL:  storage.PublicURL(s.publicBaseURL, stored),
	}, nil
}
