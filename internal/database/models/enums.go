package models

// UserRole is the account role carried in access tokens
type UserRole string

const (
	RoleOwner    UserRole = "Owner"
	RoleAdmin    UserRole = "admin"
	RoleSDAOwner UserRole = "sda_owner"
)

// UserStatus is the account status; only active accounts may log in
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// ActivityAction is the closed set of audited accommodation mutations
type ActivityAction string

const (
	ActionAdd    ActivityAction = "add"
	ActionEdit   ActivityAction = "edit"
	ActionDelete ActivityAction = "delete"
)

// RoomStatus is the occupancy state of a room
type RoomStatus string

const (
	RoomVacant      RoomStatus = "vacant"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// LinkCategory selects one of the three accommodation association sets
type LinkCategory string

const (
	CategoryFeatures  LinkCategory = "features"
	CategoryAmenities LinkCategory = "amenities"
	CategoryImages    LinkCategory = "images"
)

// AllCategories lists the association sets in the order they are applied
var AllCategories = []LinkCategory{CategoryFeatures, CategoryAmenities, CategoryImages}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSDAOwner:
		return true
	}
	return false
}

// IsValid checks if the ActivityAction is valid
func (a ActivityAction) IsValid() bool {
	switch a {
	case ActionAdd, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// IsValid checks if the RoomStatus is valid
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// IsValid checks if the LinkCategory is valid
func (c LinkCategory) IsValid() bool {
	switch c {
	case CategoryFeatures, CategoryAmenities, CategoryImages:
		return true
	}
	return false
}
