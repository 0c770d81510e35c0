package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// CatalogService manages the feature and amenity master records
type CatalogService struct {
	repo      repository.CatalogRepositoryInterface
	validator *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{repo: repo, validator: validator}
}

// CatalogEntryRequest names a new feature or amenity
type CatalogEntryRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Wheelchair access"`
}

// CatalogSeed is the YAML layout of the catalog seed file
type CatalogSeed struct {
	Features  []string `yaml:"features"`
	Amenities []string `yaml:"amenities"`
}

// SeedResult reports how many records a seed inserted
type SeedResult struct {
	Features  int `json:"features"`
	Amenities int `json:"amenities"`
}

// ListFeatures returns all features
func (s *CatalogService) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	return s.repo.ListFeatures()
}

// ListAmenities returns all amenities
func (s *CatalogService) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	return s.repo.ListAmenities()
}

// CreateFeature adds a feature with a unique name
func (s *CatalogService) CreateFeature(ctx context.Context, req *CatalogEntryRequest) (*models.Feature, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMissingRequiredFields, err)
	}
	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.GetFeatureByName(name); err == nil {
		return nil, apperrors.ErrFeatureExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check feature: %w", err)
	}
	feature := &models.Feature{Name: name}
	if err := s.repo.CreateFeature(feature); err != nil {
		return nil, apperrors.NewPersistenceError("create feature", err)
	}
	return feature, nil
}

// CreateAmenity adds an amenity with a unique name
func (s *CatalogService) CreateAmenity(ctx context.Context, req *CatalogEntryRequest) (*models.Amenity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMissingRequiredFields, err)
	}
	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.GetAmenityByName(name); err == nil {
		return nil, apperrors.ErrAmenityExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check amenity: %w", err)
	}
	amenity := &models.Amenity{Name: name}
	if err := s.repo.CreateAmenity(amenity); err != nil {
		return nil, apperrors.NewPersistenceError("create amenity", err)
	}
	return amenity, nil
}

// Seed inserts the names that do not exist yet
func (s *CatalogService) Seed(ctx context.Context, seed *CatalogSeed) (*SeedResult, error) {
	result := &SeedResult{}
	for _, name := range seed.Features {
		_, err := s.CreateFeature(ctx, &CatalogEntryRequest{Name: name})
		switch {
		case err == nil:
			result.Features++
		case errors.Is(err, apperrors.ErrFeatureExists):
		default:
			return result, err
		}
	}
	for _, name := range seed.Amenities {
		_, err := s.CreateAmenity(ctx, &CatalogEntryRequest{Name: name})
		switch {
		case err == nil:
			result.Amenities++
		case errors.Is(err, apperrors.ErrAmenityExists):
		default:
			return result, err
		}
	}
	logger.WithContext(ctx).Infof("catalog seed added %d feature(s) and %d amenity(ies)", result.Features, result.Amenities)
	return result, nil
}

// SeedFromFile loads a YAML seed file and applies it
func (s *CatalogService) SeedFromFile(ctx context.Context, path string) (*SeedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	var seed CatalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return s.Seed(ctx, &seed)
}
