package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "accommodation"}
		assert.Equal(t, "accommodation not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "room"}
		err2 := &NotFoundError{Entity: "room"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrRoomNotFound, ErrAccommodationNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("update accommodation: %w", ErrAccommodationNotFound)
		assert.True(t, errors.Is(wrapped, ErrAccommodationNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrInvalidAction))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this username", ErrUsernameExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "feature"}
		assert.Equal(t, "feature already exists", err.Error())
	})

	t.Run("username and email conflicts are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrUsernameExists, ErrEmailExists))
		assert.True(t, errors.Is(fmt.Errorf("create: %w", ErrEmailExists), ErrEmailExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrFeatureExists))
		assert.False(t, IsAlreadyExists(ErrFeatureNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: file - no file provided", ErrNoFile.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		assert.Equal(t, "validation error: missing required fields", ErrMissingRequiredFields.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(fmt.Errorf("create: %w", ErrUnknownReference)))
		assert.False(t, IsValidation(ErrAccommodationNotFound))
	})
}

func TestConflictAndPersistenceErrors(t *testing.T) {
	t.Run("conflict", func(t *testing.T) {
		err := fmt.Errorf("delete user: %w", ErrUserHasAccommodations)
		assert.True(t, IsConflict(err))
		assert.Contains(t, err.Error(), "linked to one or more accommodations")
	})

	t.Run("persistence unwraps the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewPersistenceError("delete accommodation", cause)
		assert.True(t, IsPersistence(err))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "delete accommodation: connection reset", err.Error())
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.True(t, IsAuthorization(ErrInsufficientRole))
	assert.False(t, IsAuthorization(ErrInvalidToken))
	assert.True(t, IsConfiguration(ErrJWTSecretNotSet))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		assert.True(t, IsConflict(NewConflictError("still referenced")))
	})
}
