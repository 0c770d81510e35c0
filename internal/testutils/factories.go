package testutils

import (
	"fmt"
	"sync/atomic"

	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// seq keeps generated usernames and catalog names unique within a test run
var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active accommodation owner with password "password123"
func (f *UserFactory) Create() *models.User {
	n := next()
	email := fmt.Sprintf("owner%d@example.com", n)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Owner %d", n),
		Username:  fmt.Sprintf("owner%d", n),
		Email:     &email,
		Role:      models.RoleSDAOwner,
		Status:    models.StatusActive,
	}
	_ = user.SetPassword("password123")
	return user
}

// WithRole creates a user with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithStatus creates a user with the given status
func (f *UserFactory) WithStatus(status models.UserStatus) *models.User {
	user := f.Create()
	user.Status = status
	return user
}

// AccommodationFactory provides methods to create test Accommodation data
type AccommodationFactory struct{}

// NewAccommodationFactory creates a new AccommodationFactory
func NewAccommodationFactory() *AccommodationFactory {
	return &AccommodationFactory{}
}

// Create creates an accommodation for ownerID without links
func (f *AccommodationFactory) Create(ownerID uuid.UUID) *models.Accommodation {
	return &models.Accommodation{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		OwnerID:           ownerID,
		Title:             fmt.Sprintf("Test Villa %d", next()),
		Location:          "Sydney",
		Capacity:          4,
		Description:       "A test accommodation",
		AccommodationType: "Villa",
		Bedrooms:          2,
		Bathrooms:         1,
		Gender:            "Any",
		SupportLevel:      "High",
		Status:            "Available",
	}
}

// CatalogFactory provides methods to create Feature and Amenity master records
type CatalogFactory struct{}

// NewCatalogFactory creates a new CatalogFactory
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{}
}

// Feature creates a uniquely named feature
func (f *CatalogFactory) Feature() *models.Feature {
	return &models.Feature{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Feature %d", next()),
	}
}

// Amenity creates a uniquely named amenity
func (f *CatalogFactory) Amenity() *models.Amenity {
	return &models.Amenity{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Amenity %d", next()),
	}
}

// ImageFactory provides methods to create test Image data
type ImageFactory struct{}

// NewImageFactory creates a new ImageFactory
func NewImageFactory() *ImageFactory {
	return &ImageFactory{}
}

// Unattached creates an image row stored in the owner's folder
func (f *ImageFactory) Unattached(ownerID uuid.UUID) *models.Image {
	return &models.Image{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Path:      fmt.Sprintf("uploads/%s/photo%d.jpg", ownerID, next()),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User          *UserFactory
	Accommodation *AccommodationFactory
	Catalog       *CatalogFactory
	Image         *ImageFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Accommodation: NewAccommodationFactory(),
		Catalog:       NewCatalogFactory(),
		Image:         NewImageFactory(),
	}
}
