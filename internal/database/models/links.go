package models

import (
	"github.com/google/uuid"
)

// AccommodationFeature links an accommodation to a feature
type AccommodationFeature struct {
	BaseModel
	AccommodationID uuid.UUID `json:"accommodation_id" gorm:"type:uuid;not null;index"`
	FeatureID       uuid.UUID `json:"feature_id" gorm:"type:uuid;not null;index"`
	Position        int       `json:"position" gorm:"not null;default:0"`

	Feature *Feature `json:"-" gorm:"foreignKey:FeatureID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AccommodationFeature
func (AccommodationFeature) TableName() string {
	return "accommodation_features"
}

// AccommodationAmenity links an accommodation to an amenity
type AccommodationAmenity struct {
	BaseModel
	AccommodationID uuid.UUID `json:"accommodation_id" gorm:"type:uuid;not null;index"`
	AmenityID       uuid.UUID `json:"amenity_id" gorm:"type:uuid;not null;index"`
	Position        int       `json:"position" gorm:"not null;default:0"`

	Amenity *Amenity `json:"-" gorm:"foreignKey:AmenityID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AccommodationAmenity
func (AccommodationAmenity) TableName() string {
	return "accommodation_amenities"
}

// AccommodationImage links an accommodation to an image
type AccommodationImage struct {
	BaseModel
	AccommodationID uuid.UUID `json:"accommodation_id" gorm:"type:uuid;not null;index"`
	ImageID         uuid.UUID `json:"image_id" gorm:"type:uuid;not null;index"`
	Position        int       `json:"position" gorm:"not null;default:0"`

	Image *Image `json:"-" gorm:"foreignKey:ImageID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AccommodationImage
func (AccommodationImage) TableName() string {
	return "accommodation_images"
}
