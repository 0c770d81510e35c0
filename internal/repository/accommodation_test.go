//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AccommodationRepositoryTestSuite tests accommodations with their rooms,
// activity entries and the store transaction
type AccommodationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet
	owner         *models.User
}

func (suite *AccommodationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AccommodationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AccommodationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.owner = suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users().Create(suite.owner))
}

func (suite *AccommodationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AccommodationRepositoryTestSuite) TestGetByIDAndOwnerScopesToOwner() {
	acc := suite.factories.Accommodation.Create(suite.owner.ID)
	suite.Require().NoError(suite.store.Accommodations().Create(acc))

	got, err := suite.store.Accommodations().GetByIDAndOwner(acc.ID, suite.owner.ID)
	suite.NoError(err)
	suite.Equal(acc.Title, got.Title)

	_, err = suite.store.Accommodations().GetByIDAndOwner(acc.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AccommodationRepositoryTestSuite) TestGetByOwnerPreloadsImages() {
	acc := suite.factories.Accommodation.Create(suite.owner.ID)
	suite.Require().NoError(suite.store.Accommodations().Create(acc))
	img := suite.factories.Image.Unattached(suite.owner.ID)
	suite.Require().NoError(suite.store.Images().Create(img))
	suite.Require().NoError(suite.store.Links().Replace(acc.ID, models.CategoryImages, []uuid.UUID{img.ID}))

	accs, err := suite.store.Accommodations().GetByOwner(suite.owner.ID)

	suite.NoError(err)
	suite.Require().Len(accs, 1)
	suite.Equal([]string{img.Path}, accs[0].ImagePaths())
	suite.Equal([]uuid.UUID{img.ID}, accs[0].ImageIDs())
}

func (suite *AccommodationRepositoryTestSuite) TestUpdateAndDelete() {
	acc := suite.factories.Accommodation.Create(suite.owner.ID)
	suite.Require().NoError(suite.store.Accommodations().Create(acc))

	suite.NoError(suite.store.Accommodations().Update(acc.ID, map[string]interface{}{"title": "Renamed", "capacity": 0}))
	got, err := suite.store.Accommodations().GetByID(acc.ID)
	suite.NoError(err)
	suite.Equal("Renamed", got.Title)
	suite.Equal(0, got.Capacity)

	suite.NoError(suite.store.Accommodations().Delete(acc.ID))
	suite.ErrorIs(suite.store.Accommodations().Delete(acc.ID), gorm.ErrRecordNotFound)
}

func (suite *AccommodationRepositoryTestSuite) TestRoomsCascadeWithAccommodation() {
	acc := suite.factories.Accommodation.Create(suite.owner.ID)
	suite.Require().NoError(suite.store.Accommodations().Create(acc))
	label := "R1"
	room := &models.Room{AccommodationID: acc.ID, Label: &label, Status: models.RoomVacant}
	suite.Require().NoError(suite.store.Rooms().Create(room))

	rooms, err := suite.store.Rooms().GetByAccommodation(acc.ID)
	suite.NoError(err)
	suite.Len(rooms, 1)

	_, err = suite.store.Rooms().GetByID(room.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.Require().NoError(suite.store.Accommodations().Delete(acc.ID))
	rooms, err = suite.store.Rooms().GetByAccommodation(acc.ID)
	suite.NoError(err)
	suite.Empty(rooms)
}

func (suite *AccommodationRepositoryTestSuite) TestActivitiesNewestFirstWithLimit() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := &models.Activity{
			OwnerID:            suite.owner.ID,
			Action:             models.ActionAdd,
			AccommodationTitle: "Villa",
			Timestamp:          base.Add(time.Duration(i) * time.Minute),
		}
		suite.Require().NoError(suite.store.Activities().Create(entry))
	}

	entries, err := suite.store.Activities().GetByOwner(suite.owner.ID, 2)
	suite.NoError(err)
	suite.Require().Len(entries, 2)
	suite.True(entries[0].Timestamp.After(entries[1].Timestamp))

	all, err := suite.store.Activities().GetAll(0)
	suite.NoError(err)
	suite.Len(all, 3)
}

func (suite *AccommodationRepositoryTestSuite) TestTransactionRollsBack() {
	acc := suite.factories.Accommodation.Create(suite.owner.ID)
	boom := errors.New("boom")

	err := suite.store.Transaction(func(tx StoreInterface) error {
		if err := tx.Accommodations().Create(acc); err != nil {
			return err
		}
		return boom
	})

	suite.ErrorIs(err, boom)
	_, err = suite.store.Accommodations().GetByID(acc.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AccommodationRepositoryTestSuite) TestCatalogLookupsByName() {
	feature := suite.factories.Catalog.Feature()
	suite.Require().NoError(suite.store.Catalog().CreateFeature(feature))
	amenity := suite.factories.Catalog.Amenity()
	suite.Require().NoError(suite.store.Catalog().CreateAmenity(amenity))

	gotFeature, err := suite.store.Catalog().GetFeatureByName(feature.Name)
	suite.NoError(err)
	suite.Equal(feature.ID, gotFeature.ID)

	gotAmenity, err := suite.store.Catalog().GetAmenityByName(amenity.Name)
	suite.NoError(err)
	suite.Equal(amenity.ID, gotAmenity.ID)

	dup := &models.Feature{Name: feature.Name}
	suite.Error(suite.store.Catalog().CreateFeature(dup))
}

func TestAccommodationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccommodationRepositoryTestSuite))
}
