package repository

import (
	"time"

	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const unreferencedImage = "NOT EXISTS (SELECT 1 FROM accommodation_images ai WHERE ai.image_id = images.id)"

// ImageRepository handles database operations for image master records
type ImageRepository struct {
	db *gorm.DB
}

// Ensure ImageRepository implements ImageRepositoryInterface
var _ ImageRepositoryInterface = (*ImageRepository)(nil)

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create creates a new image record
func (r *ImageRepository) Create(img *models.Image) error {
	return r.db.Create(img).Error
}

// GetByID retrieves an image by ID
func (r *ImageRepository) GetByID(id uuid.UUID) (*models.Image, error) {
	var img models.Image
	if err := r.db.First(&img, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// GetByIDs retrieves images by a set of IDs, in no particular order
func (r *ImageRepository) GetByIDs(ids []uuid.UUID) ([]models.Image, error) {
	if len(ids) == 0 {
		return []models.Image{}, nil
	}
	var imgs []models.Image
	if err := r.db.Where("id IN ?", ids).Find(&imgs).Error; err != nil {
		return nil, err
	}
	return imgs, nil
}

// UpdatePath sets the stored path of an image
func (r *ImageRepository) UpdatePath(id uuid.UUID, path string) error {
	return r.db.Model(&models.Image{}).Where("id = ?", id).Update("path", path).Error
}

// Delete deletes an image record
func (r *ImageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Image{}, "id = ?", id).Error
}

// DeleteIfUnreferenced deletes the image only when no link row references it,
// reporting whether a row was removed
func (r *ImageRepository) DeleteIfUnreferenced(id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ?", id).Where(unreferencedImage).Delete(&models.Image{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListUnreferencedBefore returns images created before cutoff that no accommodation links to
func (r *ImageRepository) ListUnreferencedBefore(cutoff time.Time) ([]models.Image, error) {
	var imgs []models.Image
	err := r.db.Where("created_at < ?", cutoff).Where(unreferencedImage).Order("created_at ASC").Find(&imgs).Error
	if err != nil {
		return nil, err
	}
	return imgs, nil
}
