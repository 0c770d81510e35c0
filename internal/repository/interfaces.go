package repository

import (
	"time"

	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	CountAccommodations(id uuid.UUID) (int64, error)
}

// AccommodationRepositoryInterface defines the interface for accommodation repository operations.
// Reads that return an Accommodation preload its link rows in link order.
type AccommodationRepositoryInterface interface {
	Create(acc *models.Accommodation) error
	GetByID(id uuid.UUID) (*models.Accommodation, error)
	GetByIDAndOwner(id, ownerID uuid.UUID) (*models.Accommodation, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Accommodation, error)
	GetAll() ([]models.Accommodation, error)
	ListIDsByOwner(ownerID uuid.UUID) ([]uuid.UUID, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// LinkRepositoryInterface defines the interface for accommodation link-row operations
type LinkRepositoryInterface interface {
	Replace(accommodationID uuid.UUID, category models.LinkCategory, ids []uuid.UUID) error
	ListIDs(accommodationID uuid.UUID, category models.LinkCategory) ([]uuid.UUID, error)
	DeleteAll(accommodationID uuid.UUID) error
	CountImageReferences(imageID uuid.UUID) (int64, error)
	CountImageReferencesExcluding(imageID, accommodationID uuid.UUID) (int64, error)
	ListImageHolders(imageID, excludingAccommodationID uuid.UUID) ([]uuid.UUID, error)
	CountExisting(category models.LinkCategory, ids []uuid.UUID) (int64, error)
}

// ImageRepositoryInterface defines the interface for image master-record operations
type ImageRepositoryInterface interface {
	Create(img *models.Image) error
	GetByID(id uuid.UUID) (*models.Image, error)
	GetByIDs(ids []uuid.UUID) ([]models.Image, error)
	UpdatePath(id uuid.UUID, path string) error
	Delete(id uuid.UUID) error
	DeleteIfUnreferenced(id uuid.UUID) (bool, error)
	ListUnreferencedBefore(cutoff time.Time) ([]models.Image, error)
}

// ActivityRepositoryInterface defines the interface for audit log operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByOwner(ownerID uuid.UUID, limit int) ([]models.Activity, error)
	GetAll(limit int) ([]models.Activity, error)
}

// RoomRepositoryInterface defines the interface for room repository operations
type RoomRepositoryInterface interface {
	Create(room *models.Room) error
	GetByID(id, accommodationID uuid.UUID) (*models.Room, error)
	GetByAccommodation(accommodationID uuid.UUID) ([]models.Room, error)
	Update(room *models.Room) error
	Delete(id uuid.UUID) error
}

// CatalogRepositoryInterface defines the interface for feature and amenity master records
type CatalogRepositoryInterface interface {
	ListFeatures() ([]models.Feature, error)
	ListAmenities() ([]models.Amenity, error)
	CreateFeature(feature *models.Feature) error
	CreateAmenity(amenity *models.Amenity) error
	GetFeatureByName(name string) (*models.Feature, error)
	GetAmenityByName(name string) (*models.Amenity, error)
}

// StoreInterface groups the repositories and runs them inside one transaction
type StoreInterface interface {
	Users() UserRepositoryInterface
	Accommodations() AccommodationRepositoryInterface
	Links() LinkRepositoryInterface
	Images() ImageRepositoryInterface
	Activities() ActivityRepositoryInterface
	Rooms() RoomRepositoryInterface
	Catalog() CatalogRepositoryInterface
	// Transaction runs fn against a Store bound to a single database
	// transaction, committing when fn returns nil and rolling back otherwise.
	Transaction(fn func(tx StoreInterface) error) error
}
