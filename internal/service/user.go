package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"
	"accommodation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccommodationRemover deletes all accommodations of an owner
type AccommodationRemover interface {
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}

// UserService handles account administration
type UserService struct {
	repo           repository.UserRepositoryInterface
	accommodations AccommodationRemover
	validator      *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, accommodations AccommodationRemover, validator *validator.Validate) *UserService {
	return &UserService{
		repo:           repo,
		accommodations: accommodations,
		validator:      validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=250"`
	Username string  `json:"username" validate:"required,max=50"`
	Email    string  `json:"email" validate:"required,email,max=120"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     *string `json:"role" example:"admin" default:"admin"`
	Status   *string `json:"status" example:"Active" default:"Active"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=250"`
	Username *string `json:"username" validate:"omitempty,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

// UsersListResponse is the swagger schema for GET /admin/users
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
}

// ListUsers returns every account
func (s *UserService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

// CreateUser creates an account; role defaults to admin and status to Active
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMissingRequiredFields, err)
	}

	if err := s.ensureUnique(req.Username, req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	role := models.RoleAdmin
	if req.Role != nil && *req.Role != "" {
		role = models.UserRole(*req.Role)
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	status := models.StatusActive
	if req.Status != nil && *req.Status != "" {
		status = models.UserStatus(*req.Status)
	}

	email := strings.TrimSpace(req.Email)
	user := &models.User{
		Name:     req.Name,
		Username: strings.TrimSpace(req.Username),
		Email:    &email,
		Role:     role,
		Status:   status,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.Create(user); err != nil {
		return nil, apperrors.NewPersistenceError("create user", err)
	}

	logger.WithContext(ctx).Infof("created user %s", user.Username)
	return toUserResponse(user), nil
}

// UpdateUser applies the present fields; the password is re-hashed only when given
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.NewValidationError("", "invalid user fields"), err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	username, email := "", ""
	if req.Username != nil && *req.Username != user.Username {
		username = *req.Username
	}
	if req.Email != nil && (user.Email == nil || *req.Email != *user.Email) {
		email = *req.Email
	}
	if err := s.ensureUnique(username, email, user.ID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		e := *req.Email
		user.Email = &e
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		user.Role = role
	}
	if req.Status != nil {
		user.Status = models.UserStatus(*req.Status)
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.NewPersistenceError("update user", err)
	}
	return toUserResponse(user), nil
}

// DeleteUser removes an account. Without cascade an owner that still has
// accommodations is refused; with cascade each accommodation goes through
// the regular delete first.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID, cascade bool) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	count, err := s.repo.CountAccommodations(id)
	if err != nil {
		return fmt.Errorf("count accommodations: %w", err)
	}
	if count > 0 {
		if !cascade {
			return apperrors.ErrUserHasAccommodations
		}
		if err := s.accommodations.DeleteAllForOwner(ctx, id); err != nil {
			return fmt.Errorf("delete accommodations of user: %w", err)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewPersistenceError("delete user", err)
	}
	logger.WithContext(ctx).Infof("deleted user %s", id)
	return nil
}

// ensureUnique rejects a username or email already used by another account;
// empty values are not checked
func (s *UserService) ensureUnique(username, email string, self uuid.UUID) error {
	if username != "" {
		existing, err := s.repo.GetByUsername(username)
		if err == nil && existing != nil && existing.ID != self {
			return apperrors.ErrUsernameExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check username: %w", err)
		}
	}
	if email != "" {
		existing, err := s.repo.GetByEmail(email)
		if err == nil && existing != nil && existing.ID != self {
			return apperrors.ErrEmailExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
	}
	return nil
}

func toUserResponse(u *models.User) *UserResponse {
	email := ""
	if u.Email != nil {
		email = *u.Email
	}
	return &UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    email,
		Role:     string(u.Role),
		Status:   string(u.Status),
	}
}
