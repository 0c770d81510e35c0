package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a plain success message
type MessageResponse struct {
	Message string `json:"message" example:"Accommodation updated successfully"`
}

// respondError maps an application error to its status code. Server-side
// failures are logged and reported with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: capitalize(validationErr.Message), Details: err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: capitalize(notFoundErr.Error())})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: capitalize(err.Error())})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: capitalize(err.Error())})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: capitalize(err.Error())})
	default:
		logger.WithContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// parseLimit reads the optional ?limit= query; 0 means no limit
func parseLimit(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apperrors.ErrInvalidLimit
	}
	return limit, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
