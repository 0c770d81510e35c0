package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConflictError is returned when an entity cannot be removed because
// other rows still reference it.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// PersistenceError wraps a failed row-store write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrAccommodationNotFound = &NotFoundError{Entity: "accommodation"}
	ErrRoomNotFound          = &NotFoundError{Entity: "room"}
	ErrImageNotFound         = &NotFoundError{Entity: "image"}
	ErrFeatureNotFound       = &NotFoundError{Entity: "feature"}
	ErrAmenityNotFound       = &NotFoundError{Entity: "amenity"}
)

// Already Exists Errors
var (
	ErrUsernameExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrEmailExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrFeatureExists  = &AlreadyExistsError{Entity: "feature", Context: "with this name"}
	ErrAmenityExists  = &AlreadyExistsError{Entity: "amenity", Context: "with this name"}
)

// Validation Errors
var (
	ErrMissingRequiredFields = &ValidationError{Message: "missing required fields"}
	ErrUnknownReference      = &ValidationError{Message: "unknown reference"}
	ErrNoFile                = &ValidationError{Field: "file", Message: "no file provided"}
	ErrInvalidExtension      = &ValidationError{Field: "file", Message: "file type not allowed"}
	ErrInvalidRoomStatus     = &ValidationError{Field: "status", Message: "must be one of vacant, occupied, maintenance"}
	ErrInvalidLimit          = &ValidationError{Field: "limit", Message: "must be a positive integer"}
)

// Integrity Errors
var (
	ErrUserHasAccommodations = &ConflictError{Message: "Cannot delete this user because they are linked to one or more accommodations"}
)

// Business Logic Errors
var (
	// ErrInvalidAction is a programming error: activity actions are a closed set.
	ErrInvalidAction = errors.New("invalid activity action")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingToken        = &AuthenticationError{Message: "missing or malformed authorization header"}
	ErrInvalidToken        = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrInactiveAccount     = &AuthorizationError{Message: "account is not active"}
	ErrInsufficientRole    = &AuthorizationError{Message: "insufficient permissions"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT secret is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewPersistenceError wraps err as a PersistenceError for the named operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}
