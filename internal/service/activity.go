package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	detailsCreated = "Created accommodation"
	detailsDeleted = "Deleted accommodation"
)

// ActivityRecorder appends audit entries for accommodation mutations
type ActivityRecorder struct {
	now func() time.Time
}

// NewActivityRecorder creates a new activity recorder
func NewActivityRecorder() *ActivityRecorder {
	return &ActivityRecorder{now: func() time.Time { return time.Now().UTC() }}
}

// Record builds and persists one entry. Delete entries never carry an
// accommodation id.
func (r *ActivityRecorder) Record(repo repository.ActivityRepositoryInterface, ownerID uuid.UUID, action models.ActivityAction, accommodationID *uuid.UUID, title, details string, changed []string) (*models.Activity, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, action)
	}
	if action == models.ActionDelete {
		accommodationID = nil
	}

	entry := &models.Activity{
		OwnerID:            ownerID,
		Action:             action,
		AccommodationID:    accommodationID,
		AccommodationTitle: title,
		Details:            details,
		Timestamp:          r.now(),
	}
	if len(changed) > 0 {
		raw, err := json.Marshal(changed)
		if err != nil {
			return nil, err
		}
		entry.ChangedFields = datatypes.JSON(raw)
	}

	if err := repo.Create(entry); err != nil {
		return entry, fmt.Errorf("save activity: %w", err)
	}
	return entry, nil
}

// EditDetails renders the changed-field summary of an edit entry
func EditDetails(changed []string) string {
	if len(changed) == 0 {
		return "Updated fields: none"
	}
	return "Updated fields: " + strings.Join(changed, ", ")
}

// ActivityService serves the audit log
type ActivityService struct {
	repo repository.ActivityRepositoryInterface
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface) *ActivityService {
	return &ActivityService{repo: repo}
}

// ActivityResponse represents one audit entry
type ActivityResponse struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	Action             string     `json:"action"`
	AccommodationID    *uuid.UUID `json:"accommodation_id"`
	AccommodationTitle string     `json:"accommodation_title"`
	Details            string     `json:"details"`
	ChangedFields      []string   `json:"changed_fields,omitempty"`
	Timestamp          time.Time  `json:"timestamp"`
}

// ListForOwner returns an owner's entries newest first
func (s *ActivityService) ListForOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]ActivityResponse, error) {
	if limit < 0 {
		return nil, apperrors.ErrInvalidLimit
	}
	entries, err := s.repo.GetByOwner(ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return toActivityResponses(entries), nil
}

// ListAll returns every entry newest first
func (s *ActivityService) ListAll(ctx context.Context, limit int) ([]ActivityResponse, error) {
	if limit < 0 {
		return nil, apperrors.ErrInvalidLimit
	}
	entries, err := s.repo.GetAll(limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return toActivityResponses(entries), nil
}

func toActivityResponses(entries []models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(entries))
	for _, e := range entries {
		resp := ActivityResponse{
			ID:                 e.ID,
			OwnerID:            e.OwnerID,
			Action:             string(e.Action),
			AccommodationID:    e.AccommodationID,
			AccommodationTitle: e.AccommodationTitle,
			Details:            e.Details,
			Timestamp:          e.Timestamp,
		}
		if len(e.ChangedFields) > 0 {
			_ = json.Unmarshal(e.ChangedFields, &resp.ChangedFields)
		}
		out = append(out, resp)
	}
	return out
}
