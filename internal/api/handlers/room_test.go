package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"accommodation-portal-backend/internal/api/handlers"
	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/mocks"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRoom *mocks.MockRoomServiceInterface
	router   *gin.Engine
	ownerID  uuid.UUID
	accID    uuid.UUID
}

func (suite *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoom = mocks.NewMockRoomServiceInterface(suite.ctrl)
	suite.ownerID = uuid.New()
	suite.accID = uuid.New()

	handler := handlers.NewRoomHandler(suite.mockRoom)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.ownerID.String())
		c.Next()
	})
	suite.router.GET("/accommodations/:id/rooms", handler.ListRooms)
	suite.router.POST("/accommodations/:id/rooms", handler.CreateRoom)
	suite.router.PUT("/accommodations/:id/rooms/:roomId", handler.UpdateRoom)
	suite.router.DELETE("/accommodations/:id/rooms/:roomId", handler.DeleteRoom)
}

func (suite *RoomHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoomHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RoomHandlerTestSuite) roomsPath() string {
	return "/accommodations/" + suite.accID.String() + "/rooms"
}

func (suite *RoomHandlerTestSuite) TestListRooms() {
	suite.mockRoom.EXPECT().
		ListRooms(gomock.Any(), suite.ownerID, suite.accID).
		Return([]models.Room{{AccommodationID: suite.accID, Status: models.RoomVacant}}, nil)

	w := suite.do(http.MethodGet, suite.roomsPath(), "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"status":"vacant"`)
}

func (suite *RoomHandlerTestSuite) TestListRooms_ForeignAccommodation() {
	suite.mockRoom.EXPECT().
		ListRooms(gomock.Any(), suite.ownerID, suite.accID).
		Return(nil, apperrors.ErrAccommodationNotFound)

	w := suite.do(http.MethodGet, suite.roomsPath(), "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RoomHandlerTestSuite) TestCreateRoom() {
	suite.mockRoom.EXPECT().
		CreateRoom(gomock.Any(), suite.ownerID, suite.accID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *service.RoomRequest) (*models.Room, error) {
			if assert.NotNil(suite.T(), req.Label) {
				assert.Equal(suite.T(), "R1", *req.Label)
			}
			assert.Nil(suite.T(), req.Status)
			return &models.Room{AccommodationID: suite.accID, Label: req.Label, Status: models.RoomVacant}, nil
		})

	w := suite.do(http.MethodPost, suite.roomsPath(), `{"label":"R1"}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *RoomHandlerTestSuite) TestUpdateRoom_InvalidStatus() {
	roomID := uuid.New()
	suite.mockRoom.EXPECT().
		UpdateRoom(gomock.Any(), suite.ownerID, suite.accID, roomID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidRoomStatus)

	w := suite.do(http.MethodPut, suite.roomsPath()+"/"+roomID.String(), `{"status":"closed"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom() {
	roomID := uuid.New()
	suite.mockRoom.EXPECT().DeleteRoom(gomock.Any(), suite.ownerID, suite.accID, roomID).Return(nil)

	w := suite.do(http.MethodDelete, suite.roomsPath()+"/"+roomID.String(), "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Room deleted successfully")
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom_MalformedRoomID() {
	w := suite.do(http.MethodDelete, suite.roomsPath()+"/abc", "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestRoomHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}
