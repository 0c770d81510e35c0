package models

import (
	"github.com/google/uuid"
)

// Accommodation is a listing owned by one user
type Accommodation struct {
	BaseModel
	OwnerID           uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title             string    `json:"title" gorm:"size:255;not null"`
	Location          string    `json:"location" gorm:"size:255;not null"`
	Capacity          int       `json:"capacity" gorm:"not null"`
	Description       string    `json:"description" gorm:"type:text;not null"`
	AccommodationType string    `json:"accommodationType" gorm:"size:255;not null"`
	Bedrooms          int       `json:"bedrooms" gorm:"not null"`
	Bathrooms         int       `json:"bathrooms" gorm:"not null"`
	Gender            string    `json:"gender" gorm:"size:100;not null"`
	SupportLevel      string    `json:"supportLevel" gorm:"size:255;not null;default:''"`
	Status            string    `json:"status" gorm:"size:50;not null"`

	Features  []AccommodationFeature `json:"-" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	Amenities []AccommodationAmenity `json:"-" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	Images    []AccommodationImage   `json:"-" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	Rooms     []Room                 `json:"-" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Accommodation
func (Accommodation) TableName() string {
	return "accommodations"
}

// FeatureIDs returns the linked feature ids in link order
func (a *Accommodation) FeatureIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Features))
	for _, l := range a.Features {
		ids = append(ids, l.FeatureID)
	}
	return ids
}

// AmenityIDs returns the linked amenity ids in link order
func (a *Accommodation) AmenityIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Amenities))
	for _, l := range a.Amenities {
		ids = append(ids, l.AmenityID)
	}
	return ids
}

// ImageIDs returns the linked image ids in link order
func (a *Accommodation) ImageIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Images))
	for _, l := range a.Images {
		ids = append(ids, l.ImageID)
	}
	return ids
}

// ImagePaths returns the stored paths of linked images; links whose Image
// was not preloaded are skipped.
func (a *Accommodation) ImagePaths() []string {
	paths := make([]string, 0, len(a.Images))
	for _, l := range a.Images {
		if l.Image != nil {
			paths = append(paths, l.Image.Path)
		}
	}
	return paths
}
