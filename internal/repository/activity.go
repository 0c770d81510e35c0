package repository

import (
	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles the append-only activities table
type ActivityRepository struct {
	db *gorm.DB
}

// Ensure ActivityRepository implements ActivityRepositoryInterface
var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity entry
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByOwner returns an owner's entries newest first; limit <= 0 means no limit
func (r *ActivityRepository) GetByOwner(ownerID uuid.UUID, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	q := r.db.Where("owner_id = ?", ownerID).Order("timestamp DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// GetAll returns every entry newest first; limit <= 0 means no limit
func (r *ActivityRepository) GetAll(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	q := r.db.Order("timestamp DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
