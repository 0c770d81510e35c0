package models

import (
	"github.com/google/uuid"
)

// Room belongs to exactly one accommodation
type Room struct {
	BaseModel
	AccommodationID uuid.UUID  `json:"accommodation_id" gorm:"type:uuid;not null;index"`
	Label           *string    `json:"label" gorm:"size:100"`
	Status          RoomStatus `json:"status" gorm:"type:varchar(20);not null;default:'vacant'"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
