package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/mocks"
	"accommodation-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

func TestActivityRecorderRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryInterface(ctrl)
	recorder := service.NewActivityRecorder()
	owner := uuid.New()
	accID := uuid.New()

	t.Run("delete drops accommodation id", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any()).Return(nil)

		entry, err := recorder.Record(repo, owner, models.ActionDelete, &accID, "Villa", "Deleted accommodation", nil)

		require.NoError(t, err)
		assert.Nil(t, entry.AccommodationID)
		assert.Equal(t, "Villa", entry.AccommodationTitle)
	})

	t.Run("edit keeps changed fields", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any()).Return(nil)

		entry, err := recorder.Record(repo, owner, models.ActionEdit, &accID, "Villa", service.EditDetails([]string{"title"}), []string{"title"})

		require.NoError(t, err)
		assert.Equal(t, accID, *entry.AccommodationID)
		assert.JSONEq(t, `["title"]`, string(entry.ChangedFields))
		assert.WithinDuration(t, time.Now().UTC(), entry.Timestamp, time.Minute)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := recorder.Record(repo, owner, models.ActivityAction("rename"), &accID, "Villa", "", nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any()).Return(errors.New("down"))

		_, err := recorder.Record(repo, owner, models.ActionAdd, &accID, "Villa", "Created accommodation", nil)
		assert.Error(t, err)
	})
}

func TestEditDetails(t *testing.T) {
	assert.Equal(t, "Updated fields: none", service.EditDetails(nil))
	assert.Equal(t, "Updated fields: title, features", service.EditDetails([]string{"title", "features"}))
}

func TestActivityServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryInterface(ctrl)
	svc := service.NewActivityService(repo)
	owner := uuid.New()

	repo.EXPECT().GetByOwner(owner, 5).Return([]models.Activity{{
		OwnerID:       owner,
		Action:        models.ActionEdit,
		Details:       "Updated fields: title",
		ChangedFields: datatypes.JSON(`["title"]`),
	}}, nil)

	list, err := svc.ListForOwner(context.Background(), owner, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"title"}, list[0].ChangedFields)
	assert.Equal(t, "edit", list[0].Action)

	_, err = svc.ListAll(context.Background(), -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
}
