package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Activity is an append-only audit entry for one accommodation mutation.
// AccommodationID is always nil for delete entries; AccommodationTitle is the
// only reference that survives the accommodation.
type Activity struct {
	BaseModel
	OwnerID            uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Action             ActivityAction `json:"action" gorm:"type:varchar(10);not null"`
	AccommodationID    *uuid.UUID     `json:"accommodation_id" gorm:"type:uuid;index"`
	AccommodationTitle string         `json:"accommodation_title" gorm:"size:255;not null"`
	Details            string         `json:"details" gorm:"type:text"`
	ChangedFields      datatypes.JSON `json:"changed_fields,omitempty" gorm:"type:jsonb"`
	Timestamp          time.Time      `json:"timestamp" gorm:"not null;index"`

	Owner         *User          `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Accommodation *Accommodation `json:"-" gorm:"foreignKey:AccommodationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
