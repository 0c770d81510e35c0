package repository

import (
	"fmt"

	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles the accommodation_features, accommodation_amenities
// and accommodation_images association tables
type LinkRepository struct {
	db *gorm.DB
}

// Ensure LinkRepository implements LinkRepositoryInterface
var _ LinkRepositoryInterface = (*LinkRepository)(nil)

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

type linkTable struct {
	model     interface{}
	column    string
	master    interface{}
	newRecord func(accommodationID, id uuid.UUID, position int) interface{}
}

func tableFor(category models.LinkCategory) (linkTable, error) {
	switch category {
	case models.CategoryFeatures:
		return linkTable{
			model:  &models.AccommodationFeature{},
			column: "feature_id",
			master: &models.Feature{},
			newRecord: func(accommodationID, id uuid.UUID, position int) interface{} {
				return &models.AccommodationFeature{AccommodationID: accommodationID, FeatureID: id, Position: position}
			},
		}, nil
	case models.CategoryAmenities:
		return linkTable{
			model:  &models.AccommodationAmenity{},
			column: "amenity_id",
			master: &models.Amenity{},
			newRecord: func(accommodationID, id uuid.UUID, position int) interface{} {
				return &models.AccommodationAmenity{AccommodationID: accommodationID, AmenityID: id, Position: position}
			},
		}, nil
	case models.CategoryImages:
		return linkTable{
			model:  &models.AccommodationImage{},
			column: "image_id",
			master: &models.Image{},
			newRecord: func(accommodationID, id uuid.UUID, position int) interface{} {
				return &models.AccommodationImage{AccommodationID: accommodationID, ImageID: id, Position: position}
			},
		}, nil
	}
	return linkTable{}, fmt.Errorf("unknown link category %q", category)
}

// Replace bulk-deletes the category's links for the accommodation and inserts
// one link per id, preserving the given order
func (r *LinkRepository) Replace(accommodationID uuid.UUID, category models.LinkCategory, ids []uuid.UUID) error {
	t, err := tableFor(category)
	if err != nil {
		return err
	}
	if err := r.db.Where("accommodation_id = ?", accommodationID).Delete(t.model).Error; err != nil {
		return err
	}
	for i, id := range ids {
		if err := r.db.Create(t.newRecord(accommodationID, id, i)).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListIDs returns the master ids linked to the accommodation, in link order
func (r *LinkRepository) ListIDs(accommodationID uuid.UUID, category models.LinkCategory) ([]uuid.UUID, error) {
	t, err := tableFor(category)
	if err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	err = r.db.Model(t.model).
		Where("accommodation_id = ?", accommodationID).
		Order("position ASC").
		Pluck(t.column, &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteAll removes every link row of every category for the accommodation
func (r *LinkRepository) DeleteAll(accommodationID uuid.UUID) error {
	for _, category := range models.AllCategories {
		t, _ := tableFor(category)
		if err := r.db.Where("accommodation_id = ?", accommodationID).Delete(t.model).Error; err != nil {
			return fmt.Errorf("delete %s links: %w", category, err)
		}
	}
	return nil
}

// CountImageReferences counts link rows referencing the image across all accommodations
func (r *LinkRepository) CountImageReferences(imageID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AccommodationImage{}).Where("image_id = ?", imageID).Count(&count).Error
	return count, err
}

// CountImageReferencesExcluding counts link rows referencing the image from
// accommodations other than the given one
func (r *LinkRepository) CountImageReferencesExcluding(imageID, accommodationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AccommodationImage{}).
		Where("image_id = ? AND accommodation_id <> ?", imageID, accommodationID).
		Count(&count).Error
	return count, err
}

// ListImageHolders returns the accommodations other than the excluded one
// that link the image, most recently linked first
func (r *LinkRepository) ListImageHolders(imageID, excludingAccommodationID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.AccommodationImage{}).
		Where("image_id = ? AND accommodation_id <> ?", imageID, excludingAccommodationID).
		Order("created_at DESC").
		Pluck("accommodation_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountExisting counts how many of the distinct ids exist as master rows of the category
func (r *LinkRepository) CountExisting(category models.LinkCategory, ids []uuid.UUID) (int64, error) {
	t, err := tableFor(category)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err = r.db.Model(t.master).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
