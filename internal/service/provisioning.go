package service

import (
	"context"
	"errors"
	"fmt"

	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// ProvisioningService creates well-known accounts at process start
type ProvisioningService struct {
	users repository.UserRepositoryInterface
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(users repository.UserRepositoryInterface) *ProvisioningService {
	return &ProvisioningService{users: users}
}

// EnsureOwner creates the Owner-role account if no account has the username.
// An existing account is left untouched. Reports whether one was created.
func (s *ProvisioningService) EnsureOwner(ctx context.Context, username, name, password string) (bool, error) {
	log := logger.WithContext(ctx).WithField("component", "provisioning")

	existing, err := s.users.GetByUsername(username)
	if err == nil {
		log.Infof("owner account already exists with id=%s", existing.ID)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("look up owner: %w", err)
	}

	owner := &models.User{
		Name:     name,
		Username: username,
		Role:     models.RoleOwner,
		Status:   models.StatusActive,
	}
	if err := owner.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash owner password: %w", err)
	}
	if err := s.users.Create(owner); err != nil {
		return false, fmt.Errorf("create owner: %w", err)
	}
	log.Infof("owner account %q created", username)
	return true, nil
}
