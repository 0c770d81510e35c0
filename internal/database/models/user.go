package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User is an account that can log in: the bootstrap Owner, admins, and
// accommodation owners.
type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:250;not null" validate:"required,max=250"`
	Username     string     `json:"username" gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	Email        *string    `json:"email" gorm:"size:120;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(50);not null;default:'sda_owner'"`
	Status       UserStatus `json:"status" gorm:"type:varchar(10);not null;default:'Active'"`

	Accommodations []Accommodation `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// SetPassword stores a bcrypt hash of password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsActive reports whether the account may log in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
