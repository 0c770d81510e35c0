package models

// Feature is a master lookup record referenced by accommodations
type Feature struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
}

// TableName returns the table name for Feature
func (Feature) TableName() string {
	return "features"
}

// Amenity is a master lookup record referenced by accommodations
type Amenity struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
}

// TableName returns the table name for Amenity
func (Amenity) TableName() string {
	return "amenities"
}

// Image is one physical file in the upload tree. Path is namespace-relative
// and changes when the file is relocated.
type Image struct {
	BaseModel
	Path string `json:"path" gorm:"size:512;not null"`
}

// TableName returns the table name for Image
func (Image) TableName() string {
	return "images"
}
