package service

import (
	"context"

	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccommodationServiceInterface defines the interface for the accommodation lifecycle
type AccommodationServiceInterface interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]AccommodationResponse, error)
	ListPublic(ctx context.Context) ([]AccommodationResponse, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *CreateAccommodationRequest) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req *UpdateAccommodationRequest) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}

// ImageServiceInterface defines the interface for image uploads
type ImageServiceInterface interface {
	Upload(ctx context.Context, ownerID uuid.UUID, req *UploadImageRequest) (*UploadImageResponse, error)
}

// ActivityServiceInterface defines the interface for reading the activity log
type ActivityServiceInterface interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]ActivityResponse, error)
	ListAll(ctx context.Context, limit int) ([]ActivityResponse, error)
}

// UserServiceInterface defines the interface for account administration
type UserServiceInterface interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID, cascade bool) error
}

// CatalogServiceInterface defines the interface for feature and amenity masters
type CatalogServiceInterface interface {
	ListFeatures(ctx context.Context) ([]models.Feature, error)
	ListAmenities(ctx context.Context) ([]models.Amenity, error)
	CreateFeature(ctx context.Context, req *CatalogEntryRequest) (*models.Feature, error)
	CreateAmenity(ctx context.Context, req *CatalogEntryRequest) (*models.Amenity, error)
	Seed(ctx context.Context, seed *CatalogSeed) (*SeedResult, error)
	SeedFromFile(ctx context.Context, path string) (*SeedResult, error)
}

// RoomServiceInterface defines the interface for rooms of an accommodation
type RoomServiceInterface interface {
	ListRooms(ctx context.Context, ownerID, accommodationID uuid.UUID) ([]models.Room, error)
	CreateRoom(ctx context.Context, ownerID, accommodationID uuid.UUID, req *RoomRequest) (*models.Room, error)
	UpdateRoom(ctx context.Context, ownerID, accommodationID, roomID uuid.UUID, req *RoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, ownerID, accommodationID, roomID uuid.UUID) error
}

var (
	_ AccommodationServiceInterface = (*AccommodationService)(nil)
	_ ImageServiceInterface         = (*ImageService)(nil)
	_ ActivityServiceInterface      = (*ActivityService)(nil)
	_ UserServiceInterface          = (*UserService)(nil)
	_ CatalogServiceInterface       = (*CatalogService)(nil)
	_ RoomServiceInterface          = (*RoomService)(nil)
)
