package repository

import (
	"accommodation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *gorm.DB
}

// Ensure RoomRepository implements RoomRepositoryInterface
var _ RoomRepositoryInterface = (*RoomRepository)(nil)

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// GetByID retrieves a room belonging to the given accommodation
func (r *RoomRepository) GetByID(id, accommodationID uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "id = ? AND accommodation_id = ?", id, accommodationID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByAccommodation lists an accommodation's rooms, oldest first
func (r *RoomRepository) GetByAccommodation(accommodationID uuid.UUID) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Where("accommodation_id = ?", accommodationID).Order("created_at ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Update updates a room
func (r *RoomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

// Delete deletes a room
func (r *RoomRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Room{}, "id = ?", id).Error
}
