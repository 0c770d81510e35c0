package repository

import (
	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccommodationRepository handles database operations for accommodations
type AccommodationRepository struct {
	db *gorm.DB
}

// Ensure AccommodationRepository implements AccommodationRepositoryInterface
var _ AccommodationRepositoryInterface = (*AccommodationRepository)(nil)

// NewAccommodationRepository creates a new accommodation repository
func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// withLinks preloads the three link sets in link order, plus the image rows
func (r *AccommodationRepository) withLinks() *gorm.DB {
	return r.db.
		Preload("Features", byPosition).
		Preload("Amenities", byPosition).
		Preload("Images", byPosition).
		Preload("Images.Image")
}

// Create inserts the accommodation row only; link rows are written separately
func (r *AccommodationRepository) Create(acc *models.Accommodation) error {
	return r.db.Omit("Features", "Amenities", "Images", "Rooms").Create(acc).Error
}

// GetByID retrieves an accommodation by ID
func (r *AccommodationRepository) GetByID(id uuid.UUID) (*models.Accommodation, error) {
	var acc models.Accommodation
	if err := r.withLinks().First(&acc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByIDAndOwner retrieves an accommodation only if ownerID owns it
func (r *AccommodationRepository) GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Accommodation, error) {
	var acc models.Accommodation
	if err := r.withLinks().First(&acc, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByOwner retrieves all accommodations of an owner, oldest first
func (r *AccommodationRepository) GetByOwner(ownerID uuid.UUID) ([]models.Accommodation, error) {
	var accs []models.Accommodation
	if err := r.withLinks().Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&accs).Error; err != nil {
		return nil, err
	}
	return accs, nil
}

// GetAll retrieves every accommodation, oldest first
func (r *AccommodationRepository) GetAll() ([]models.Accommodation, error) {
	var accs []models.Accommodation
	if err := r.withLinks().Order("created_at ASC").Find(&accs).Error; err != nil {
		return nil, err
	}
	return accs, nil
}

// ListIDsByOwner returns the ids of an owner's accommodations
func (r *AccommodationRepository) ListIDsByOwner(ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Accommodation{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update applies column updates to an accommodation
func (r *AccommodationRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Accommodation{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes an accommodation; gorm.ErrRecordNotFound when no row matched
func (r *AccommodationRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Accommodation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
