package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/mocks"
	"accommodation-portal-backend/internal/repository"
	"accommodation-portal-backend/internal/service"
	"accommodation-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func intPtr(i int) *int {
	return &i
}

// AccommodationServiceTestSuite covers the lifecycle against mocked repositories
type AccommodationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	store          *mocks.MockStoreInterface
	users          *mocks.MockUserRepositoryInterface
	accommodations *mocks.MockAccommodationRepositoryInterface
	links          *mocks.MockLinkRepositoryInterface
	images         *mocks.MockImageRepositoryInterface
	activities     *mocks.MockActivityRepositoryInterface
	blobs          *storage.FSBlobStore
	layout         storage.Layout
	service        *service.AccommodationService
	ctx            context.Context
	ownerID        uuid.UUID
}

func (suite *AccommodationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockStoreInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.accommodations = mocks.NewMockAccommodationRepositoryInterface(suite.ctrl)
	suite.links = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.images = mocks.NewMockImageRepositoryInterface(suite.ctrl)
	suite.activities = mocks.NewMockActivityRepositoryInterface(suite.ctrl)

	suite.store.EXPECT().Users().Return(suite.users).AnyTimes()
	suite.store.EXPECT().Accommodations().Return(suite.accommodations).AnyTimes()
	suite.store.EXPECT().Links().Return(suite.links).AnyTimes()
	suite.store.EXPECT().Images().Return(suite.images).AnyTimes()
	suite.store.EXPECT().Activities().Return(suite.activities).AnyTimes()
	suite.store.EXPECT().
		Transaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.StoreInterface) error) error {
			return fn(suite.store)
		}).
		AnyTimes()

	suite.blobs = storage.NewMemBlobStore()
	suite.layout = storage.NewLayout("uploads")
	relocator := storage.NewRelocator(suite.blobs, suite.layout)
	suite.service = service.NewAccommodationService(suite.store, relocator, validator.New(), "http://localhost:7008")
	suite.ctx = context.Background()
	suite.ownerID = uuid.New()
}

func (suite *AccommodationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccommodationServiceTestSuite) createRequest() *service.CreateAccommodationRequest {
	return &service.CreateAccommodationRequest{
		Title:             "Harbour View",
		Location:          "Sydney",
		Capacity:          intPtr(4),
		Description:       "Two bedroom unit",
		AccommodationType: "Unit",
		Bedrooms:          intPtr(2),
		Bathrooms:         intPtr(1),
		Gender:            "Any",
		Status:            "Available",
	}
}

func (suite *AccommodationServiceTestSuite) expectEmptyLinkSets(categories ...models.LinkCategory) {
	for _, c := range categories {
		suite.links.EXPECT().Replace(gomock.Any(), c, gomock.Len(0)).Return(nil)
	}
}

func (suite *AccommodationServiceTestSuite) accommodation(id uuid.UUID, images ...models.Image) *models.Accommodation {
	acc := &models.Accommodation{BaseModel: models.BaseModel{ID: id}, OwnerID: suite.ownerID, Title: "Harbour View"}
	for i := range images {
		img := images[i]
		acc.Images = append(acc.Images, models.AccommodationImage{AccommodationID: id, ImageID: img.ID, Position: i, Image: &img})
	}
	return acc
}

func (suite *AccommodationServiceTestSuite) TestCreateRecordsAddActivity() {
	featureID := uuid.New()
	req := suite.createRequest()
	req.Features = []uuid.UUID{featureID, featureID}
	newID := uuid.New()

	suite.accommodations.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(acc *models.Accommodation) error {
			assert.Equal(suite.T(), suite.ownerID, acc.OwnerID)
			assert.Equal(suite.T(), 4, acc.Capacity)
			acc.ID = newID
			return nil
		})
	suite.links.EXPECT().CountExisting(models.CategoryFeatures, []uuid.UUID{featureID}).Return(int64(1), nil)
	suite.links.EXPECT().Replace(newID, models.CategoryFeatures, []uuid.UUID{featureID}).Return(nil)
	suite.expectEmptyLinkSets(models.CategoryAmenities, models.CategoryImages)
	suite.activities.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Equal(suite.T(), models.ActionAdd, a.Action)
			require.NotNil(suite.T(), a.AccommodationID)
			assert.Equal(suite.T(), newID, *a.AccommodationID)
			assert.Equal(suite.T(), "Harbour View", a.AccommodationTitle)
			assert.Equal(suite.T(), "Created accommodation", a.Details)
			return nil
		})

	id, err := suite.service.Create(suite.ctx, suite.ownerID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newID, id)
}

func (suite *AccommodationServiceTestSuite) TestCreateSucceedsWhenActivityFails() {
	newID := uuid.New()
	suite.accommodations.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(acc *models.Accommodation) error {
			acc.ID = newID
			return nil
		})
	suite.expectEmptyLinkSets(models.CategoryFeatures, models.CategoryAmenities, models.CategoryImages)
	suite.activities.EXPECT().Create(gomock.Any()).Return(errors.New("activity table locked"))

	id, err := suite.service.Create(suite.ctx, suite.ownerID, suite.createRequest())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newID, id)
}

func (suite *AccommodationServiceTestSuite) TestCreateRelocatesAttachedImages() {
	newID := uuid.New()
	imageID := uuid.New()
	owner := suite.ownerID.String()
	uploaded := suite.layout.UnattachedPath(owner, "ab12cd34_front.jpg")
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(uploaded), bytes.NewBufferString("jpeg")))

	req := suite.createRequest()
	req.Images = []uuid.UUID{imageID}
	expected := suite.layout.ImagePath(owner, newID, "ab12cd34_front.jpg")

	suite.accommodations.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(acc *models.Accommodation) error {
			acc.ID = newID
			return nil
		})
	suite.expectEmptyLinkSets(models.CategoryFeatures, models.CategoryAmenities)
	suite.links.EXPECT().CountExisting(models.CategoryImages, []uuid.UUID{imageID}).Return(int64(1), nil)
	suite.links.EXPECT().Replace(newID, models.CategoryImages, []uuid.UUID{imageID}).Return(nil)
	suite.images.EXPECT().
		GetByIDs([]uuid.UUID{imageID}).
		Return([]models.Image{{BaseModel: models.BaseModel{ID: imageID}, Path: uploaded}}, nil)
	suite.images.EXPECT().UpdatePath(imageID, expected).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.service.Create(suite.ctx, suite.ownerID, req)
	require.NoError(suite.T(), err)

	moved, err := suite.blobs.Exists(suite.layout.Key(expected))
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), moved)
	left, _ := suite.blobs.Exists(suite.layout.Key(uploaded))
	assert.False(suite.T(), left)
}

func (suite *AccommodationServiceTestSuite) TestCreateUnknownReference() {
	req := suite.createRequest()
	req.Amenities = []uuid.UUID{uuid.New()}

	suite.accommodations.EXPECT().Create(gomock.Any()).Return(nil)
	suite.expectEmptyLinkSets(models.CategoryFeatures)
	suite.links.EXPECT().CountExisting(models.CategoryAmenities, gomock.Any()).Return(int64(0), nil)

	_, err := suite.service.Create(suite.ctx, suite.ownerID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnknownReference)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AccommodationServiceTestSuite) TestCreateRejectsImageOfAnotherOwner() {
	newID := uuid.New()
	imageID := uuid.New()
	foreign := suite.layout.UnattachedPath(uuid.NewString(), "theirs.jpg")
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(foreign), bytes.NewBufferString("jpeg")))

	req := suite.createRequest()
	req.Images = []uuid.UUID{imageID}

	suite.accommodations.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(acc *models.Accommodation) error {
			acc.ID = newID
			return nil
		})
	suite.expectEmptyLinkSets(models.CategoryFeatures, models.CategoryAmenities)
	suite.links.EXPECT().CountExisting(models.CategoryImages, []uuid.UUID{imageID}).Return(int64(1), nil)
	suite.links.EXPECT().Replace(newID, models.CategoryImages, []uuid.UUID{imageID}).Return(nil)
	suite.images.EXPECT().
		GetByIDs([]uuid.UUID{imageID}).
		Return([]models.Image{{BaseModel: models.BaseModel{ID: imageID}, Path: foreign}}, nil)
	suite.activities.EXPECT().Create(gomock.Any()).Times(0)

	_, err := suite.service.Create(suite.ctx, suite.ownerID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnknownReference)
	still, _ := suite.blobs.Exists(suite.layout.Key(foreign))
	assert.True(suite.T(), still)
}

func (suite *AccommodationServiceTestSuite) TestCreateMissingFields() {
	req := suite.createRequest()
	req.Bedrooms = nil

	_, err := suite.service.Create(suite.ctx, suite.ownerID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingRequiredFields)
}

func (suite *AccommodationServiceTestSuite) TestCreatePersistenceFailure() {
	suite.accommodations.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.service.Create(suite.ctx, suite.ownerID, suite.createRequest())

	assert.True(suite.T(), apperrors.IsPersistence(err))
}

func (suite *AccommodationServiceTestSuite) TestUpdateReplacesImagesAndCollectsOrphans() {
	id := uuid.New()
	owner := suite.ownerID.String()
	oldImage := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "old.jpg")}
	newImage := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.UnattachedPath(owner, "new.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(oldImage.Path), bytes.NewBufferString("old")))
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(newImage.Path), bytes.NewBufferString("new")))

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, oldImage), nil)
	suite.accommodations.EXPECT().Update(id, map[string]interface{}{"title": "Renamed"}).Return(nil)
	suite.links.EXPECT().ListIDs(id, models.CategoryImages).Return([]uuid.UUID{oldImage.ID}, nil)
	suite.links.EXPECT().CountExisting(models.CategoryImages, []uuid.UUID{newImage.ID}).Return(int64(1), nil)
	suite.links.EXPECT().Replace(id, models.CategoryImages, []uuid.UUID{newImage.ID}).Return(nil)
	suite.images.EXPECT().GetByIDs([]uuid.UUID{newImage.ID}).Return([]models.Image{newImage}, nil)
	suite.images.EXPECT().UpdatePath(newImage.ID, suite.layout.ImagePath(owner, id, "new.jpg")).Return(nil)
	suite.links.EXPECT().CountImageReferences(oldImage.ID).Return(int64(0), nil)
	suite.images.EXPECT().GetByID(oldImage.ID).Return(&oldImage, nil)
	suite.images.EXPECT().Delete(oldImage.ID).Return(nil)
	suite.activities.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Equal(suite.T(), models.ActionEdit, a.Action)
			assert.Equal(suite.T(), "Renamed", a.AccommodationTitle)
			assert.Equal(suite.T(), "Updated fields: title, images", a.Details)
			assert.JSONEq(suite.T(), `["title","images"]`, string(a.ChangedFields))
			return nil
		})

	err := suite.service.Update(suite.ctx, suite.ownerID, id, &service.UpdateAccommodationRequest{
		Title:  strPtr("Renamed"),
		Images: []uuid.UUID{newImage.ID},
	})
	require.NoError(suite.T(), err)

	gone, _ := suite.blobs.Exists(suite.layout.Key(oldImage.Path))
	assert.False(suite.T(), gone)
	moved, _ := suite.blobs.Exists(suite.layout.Key(suite.layout.ImagePath(owner, id, "new.jpg")))
	assert.True(suite.T(), moved)
}

func (suite *AccommodationServiceTestSuite) TestUpdateRollsBackWhenLinkReplaceFails() {
	id := uuid.New()
	featureID := uuid.New()

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id), nil)
	suite.accommodations.EXPECT().Update(id, map[string]interface{}{"title": "Renamed"}).Return(nil)
	suite.links.EXPECT().ListIDs(id, models.CategoryFeatures).Return(nil, nil)
	suite.links.EXPECT().CountExisting(models.CategoryFeatures, []uuid.UUID{featureID}).Return(int64(1), nil)
	suite.links.EXPECT().Replace(id, models.CategoryFeatures, []uuid.UUID{featureID}).Return(errors.New("deadlock detected"))
	suite.activities.EXPECT().Create(gomock.Any()).Times(0)

	err := suite.service.Update(suite.ctx, suite.ownerID, id, &service.UpdateAccommodationRequest{
		Title:    strPtr("Renamed"),
		Features: []uuid.UUID{featureID},
	})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsPersistence(err))
}

func (suite *AccommodationServiceTestSuite) TestUpdateKeepsOrphanFileWhenCommitFails() {
	id := uuid.New()
	owner := suite.ownerID.String()
	oldImage := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "old.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(oldImage.Path), bytes.NewBufferString("old")))

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, oldImage), nil)
	suite.accommodations.EXPECT().Update(id, map[string]interface{}{}).Return(nil)
	suite.links.EXPECT().ListIDs(id, models.CategoryImages).Return([]uuid.UUID{oldImage.ID}, nil)
	suite.links.EXPECT().Replace(id, models.CategoryImages, gomock.Len(0)).Return(nil)
	suite.links.EXPECT().CountImageReferences(oldImage.ID).Return(int64(0), nil)
	suite.images.EXPECT().GetByID(oldImage.ID).Return(&oldImage, nil)
	suite.images.EXPECT().Delete(oldImage.ID).Return(errors.New("insert failed"))
	suite.activities.EXPECT().Create(gomock.Any()).Times(0)

	err := suite.service.Update(suite.ctx, suite.ownerID, id, &service.UpdateAccommodationRequest{Images: []uuid.UUID{}})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsPersistence(err))
	exists, _ := suite.blobs.Exists(suite.layout.Key(oldImage.Path))
	assert.True(suite.T(), exists)
}

func (suite *AccommodationServiceTestSuite) TestUpdateWithoutChanges() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id), nil)
	suite.accommodations.EXPECT().Update(id, map[string]interface{}{}).Return(nil)
	suite.activities.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Equal(suite.T(), "Updated fields: none", a.Details)
			return nil
		})

	assert.NoError(suite.T(), suite.service.Update(suite.ctx, suite.ownerID, id, &service.UpdateAccommodationRequest{}))
}

func (suite *AccommodationServiceTestSuite) TestUpdateNotOwned() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Update(suite.ctx, suite.ownerID, id, &service.UpdateAccommodationRequest{Title: strPtr("x")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccommodationNotFound)
}

func (suite *AccommodationServiceTestSuite) TestDeleteRemovesOnlyUnsharedImages() {
	id := uuid.New()
	owner := suite.ownerID.String()
	private := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "a.jpg")}
	shared := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, uuid.New(), "b.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(private.Path), bytes.NewBufferString("a")))
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(shared.Path), bytes.NewBufferString("b")))

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, private, shared), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(private.ID, id).Return(int64(0), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(shared.ID, id).Return(int64(1), nil)
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.images.EXPECT().GetByID(private.ID).Return(&private, nil)
	suite.images.EXPECT().Delete(private.ID).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Equal(suite.T(), models.ActionDelete, a.Action)
			assert.Nil(suite.T(), a.AccommodationID)
			assert.Equal(suite.T(), "Harbour View", a.AccommodationTitle)
			return nil
		})

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))

	exists, _ := suite.blobs.Exists(suite.layout.Key(private.Path))
	assert.False(suite.T(), exists)
	exists, _ = suite.blobs.Exists(suite.layout.Key(shared.Path))
	assert.True(suite.T(), exists)
}

func (suite *AccommodationServiceTestSuite) TestDeleteMovesSharedFileToRemainingHolder() {
	id, other := uuid.New(), uuid.New()
	owner := suite.ownerID.String()
	shared := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "shared.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(shared.Path), bytes.NewBufferString("s")))
	rehomed := suite.layout.ImagePath(owner, other, "shared.jpg")

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, shared), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(shared.ID, id).Return(int64(1), nil)
	suite.links.EXPECT().ListImageHolders(shared.ID, id).Return([]uuid.UUID{other}, nil)
	suite.images.EXPECT().UpdatePath(shared.ID, rehomed).Return(nil)
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(nil)

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))

	exists, _ := suite.blobs.Exists(suite.layout.Key(rehomed))
	assert.True(suite.T(), exists)
	exists, _ = suite.blobs.Exists(suite.layout.Key(shared.Path))
	assert.False(suite.T(), exists)
}

func (suite *AccommodationServiceTestSuite) TestDeleteDetachesSharedFileWhenNoHolderFound() {
	id := uuid.New()
	owner := suite.ownerID.String()
	shared := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "shared.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(shared.Path), bytes.NewBufferString("s")))
	detached := suite.layout.UnattachedPath(owner, "shared.jpg")

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, shared), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(shared.ID, id).Return(int64(1), nil)
	suite.links.EXPECT().ListImageHolders(shared.ID, id).Return(nil, nil)
	suite.images.EXPECT().UpdatePath(shared.ID, detached).Return(nil)
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(nil)

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))

	exists, _ := suite.blobs.Exists(suite.layout.Key(detached))
	assert.True(suite.T(), exists)
}

func (suite *AccommodationServiceTestSuite) TestDeleteKeepsFolderWhenSharedFileCannotMove() {
	id := uuid.New()
	owner := suite.ownerID.String()
	private := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "a.jpg")}
	shared := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "b.jpg")}
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(private.Path), bytes.NewBufferString("a")))
	require.NoError(suite.T(), suite.blobs.Save(suite.layout.Key(shared.Path), bytes.NewBufferString("b")))

	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id, private, shared), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(private.ID, id).Return(int64(0), nil)
	suite.links.EXPECT().CountImageReferencesExcluding(shared.ID, id).Return(int64(1), nil)
	suite.links.EXPECT().ListImageHolders(shared.ID, id).Return(nil, errors.New("connection reset"))
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.images.EXPECT().GetByID(private.ID).Return(&private, nil)
	suite.images.EXPECT().Delete(private.ID).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(nil)

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))

	exists, _ := suite.blobs.Exists(suite.layout.Key(shared.Path))
	assert.True(suite.T(), exists)
	exists, _ = suite.blobs.Exists(suite.layout.Key(private.Path))
	assert.False(suite.T(), exists)
}

func (suite *AccommodationServiceTestSuite) TestDeleteContinuesWhenLinkRemovalFails() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id), nil)
	suite.links.EXPECT().DeleteAll(id).Return(errors.New("deadlock detected"))
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(nil)

	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))
}

func (suite *AccommodationServiceTestSuite) TestDeleteRowFailureIsFatal() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id), nil)
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(errors.New("foreign key violation"))

	err := suite.service.Delete(suite.ctx, suite.ownerID, id)

	require.Error(suite.T(), err)
	var perr *apperrors.PersistenceError
	require.ErrorAs(suite.T(), err, &perr)
	assert.Equal(suite.T(), "Failed to delete accommodation", perr.Op)
}

func (suite *AccommodationServiceTestSuite) TestDeleteSucceedsWhenActivityFails() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(suite.accommodation(id), nil)
	suite.links.EXPECT().DeleteAll(id).Return(nil)
	suite.accommodations.EXPECT().Delete(id).Return(nil)
	suite.activities.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))

	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.ownerID, id))
}

func (suite *AccommodationServiceTestSuite) TestDeleteNotOwned() {
	id := uuid.New()
	suite.accommodations.EXPECT().GetByIDAndOwner(id, suite.ownerID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(suite.ctx, suite.ownerID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccommodationNotFound)
}

func (suite *AccommodationServiceTestSuite) TestListPublicResolvesURLs() {
	id := uuid.New()
	owner := suite.ownerID.String()
	img := models.Image{BaseModel: models.BaseModel{ID: uuid.New()}, Path: suite.layout.ImagePath(owner, id, "a.jpg")}
	suite.accommodations.EXPECT().GetAll().Return([]models.Accommodation{*suite.accommodation(id, img)}, nil)
	suite.users.EXPECT().GetByIDs([]uuid.UUID{suite.ownerID}).Return([]models.User{{BaseModel: models.BaseModel{ID: suite.ownerID}, Name: "System Owner"}}, nil)

	list, err := suite.service.ListPublic(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "System Owner", list[0].Owner)
	assert.Equal(suite.T(), []string{"http://localhost:7008/" + img.Path}, list[0].Images)
}

func TestAccommodationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccommodationServiceTestSuite))
}
