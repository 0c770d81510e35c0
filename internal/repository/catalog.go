package repository

import (
	"accommodation-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CatalogRepository handles the feature and amenity lookup tables
type CatalogRepository struct {
	db *gorm.DB
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListFeatures returns all features ordered by name
func (r *CatalogRepository) ListFeatures() ([]models.Feature, error) {
	var features []models.Feature
	if err := r.db.Order("name ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// ListAmenities returns all amenities ordered by name
func (r *CatalogRepository) ListAmenities() ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := r.db.Order("name ASC").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

// CreateFeature creates a new feature
func (r *CatalogRepository) CreateFeature(feature *models.Feature) error {
	return r.db.Create(feature).Error
}

// CreateAmenity creates a new amenity
func (r *CatalogRepository) CreateAmenity(amenity *models.Amenity) error {
	return r.db.Create(amenity).Error
}

// GetFeatureByName retrieves a feature by name
func (r *CatalogRepository) GetFeatureByName(name string) (*models.Feature, error) {
	var feature models.Feature
	if err := r.db.First(&feature, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// GetAmenityByName retrieves an amenity by name
func (r *CatalogRepository) GetAmenityByName(name string) (*models.Amenity, error) {
	var amenity models.Amenity
	if err := r.db.First(&amenity, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &amenity, nil
}
