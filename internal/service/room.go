package service

import (
	"context"
	"errors"
	"fmt"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomService manages rooms of an owner's accommodations
type RoomService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewRoomService creates a new room service
func NewRoomService(store repository.StoreInterface, validator *validator.Validate) *RoomService {
	return &RoomService{store: store, validator: validator}
}

// RoomRequest creates or updates a room; status defaults to vacant on create
type RoomRequest struct {
	Label  *string `json:"label" validate:"omitempty,max=100"`
	Status *string `json:"status" example:"vacant"`
}

// ListRooms returns the rooms of an accommodation the owner holds
func (s *RoomService) ListRooms(ctx context.Context, ownerID, accommodationID uuid.UUID) ([]models.Room, error) {
	if err := s.ensureOwned(ownerID, accommodationID); err != nil {
		return nil, err
	}
	return s.store.Rooms().GetByAccommodation(accommodationID)
}

// CreateRoom adds a room to an owned accommodation
func (s *RoomService) CreateRoom(ctx context.Context, ownerID, accommodationID uuid.UUID, req *RoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.NewValidationError("", "invalid room fields"), err)
	}
	if err := s.ensureOwned(ownerID, accommodationID); err != nil {
		return nil, err
	}
	status := models.RoomVacant
	if req.Status != nil {
		status = models.RoomStatus(*req.Status)
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidRoomStatus
	}
	room := &models.Room{AccommodationID: accommodationID, Label: req.Label, Status: status}
	if err := s.store.Rooms().Create(room); err != nil {
		return nil, apperrors.NewPersistenceError("create room", err)
	}
	return room, nil
}

// UpdateRoom changes a room's label or status
func (s *RoomService) UpdateRoom(ctx context.Context, ownerID, accommodationID, roomID uuid.UUID, req *RoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.NewValidationError("", "invalid room fields"), err)
	}
	room, err := s.getRoom(ownerID, accommodationID, roomID)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		status := models.RoomStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidRoomStatus
		}
		room.Status = status
	}
	if req.Label != nil {
		room.Label = req.Label
	}
	if err := s.store.Rooms().Update(room); err != nil {
		return nil, apperrors.NewPersistenceError("update room", err)
	}
	return room, nil
}

// DeleteRoom removes a room
func (s *RoomService) DeleteRoom(ctx context.Context, ownerID, accommodationID, roomID uuid.UUID) error {
	room, err := s.getRoom(ownerID, accommodationID, roomID)
	if err != nil {
		return err
	}
	if err := s.store.Rooms().Delete(room.ID); err != nil {
		return apperrors.NewPersistenceError("delete room", err)
	}
	return nil
}

func (s *RoomService) getRoom(ownerID, accommodationID, roomID uuid.UUID) (*models.Room, error) {
	if err := s.ensureOwned(ownerID, accommodationID); err != nil {
		return nil, err
	}
	room, err := s.store.Rooms().GetByID(roomID, accommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}
	return room, nil
}

func (s *RoomService) ensureOwned(ownerID, accommodationID uuid.UUID) error {
	if _, err := s.store.Accommodations().GetByIDAndOwner(accommodationID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccommodationNotFound
		}
		return fmt.Errorf("load accommodation: %w", err)
	}
	return nil
}
