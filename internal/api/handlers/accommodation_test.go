package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"accommodation-portal-backend/internal/api/handlers"
	apperrors "accommodation-portal-backend/internal/errors"
	"accommodation-portal-backend/internal/mocks"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccommodationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAccommodationServiceInterface
	handler     *handlers.AccommodationHandler
	ownerID     uuid.UUID
}

func (suite *AccommodationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAccommodationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAccommodationHandler(suite.mockService)
	suite.ownerID = uuid.New()
}

func (suite *AccommodationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newRouter optionally injects the authenticated owner the way RequireAuth does
func (suite *AccommodationHandlerTestSuite) newRouter(withOwner bool) *gin.Engine {
	r := gin.New()
	if withOwner {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", suite.ownerID.String())
			c.Set("username", "owner")
			c.Next()
		})
	}
	r.GET("/get_accommodations", suite.handler.ListOwn)
	r.GET("/public/accommodations", suite.handler.ListPublic)
	r.POST("/add_accommodation", suite.handler.Create)
	r.PUT("/update_accommodation/:id", suite.handler.Update)
	r.DELETE("/delete_accommodation/:id", suite.handler.Delete)
	return r
}

func (suite *AccommodationHandlerTestSuite) serve(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *AccommodationHandlerTestSuite) TestListOwn_Success() {
	router := suite.newRouter(true)
	acc := service.AccommodationResponse{ID: uuid.New(), Title: "Villa", Images: []string{"uploads/x/y/images/a.jpg"}}
	suite.mockService.EXPECT().ListForOwner(gomock.Any(), suite.ownerID).Return([]service.AccommodationResponse{acc}, nil)

	w := suite.serve(router, http.MethodGet, "/get_accommodations", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.AccommodationListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Accommodations, 1)
	assert.Equal(suite.T(), acc.ID, got.Accommodations[0].ID)
	assert.Equal(suite.T(), acc.Images, got.Accommodations[0].Images)
}

func (suite *AccommodationHandlerTestSuite) TestListOwn_Unauthenticated() {
	router := suite.newRouter(false)

	w := suite.serve(router, http.MethodGet, "/get_accommodations", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AccommodationHandlerTestSuite) TestListPublic_ServiceError() {
	router := suite.newRouter(false)
	suite.mockService.EXPECT().ListPublic(gomock.Any()).Return(nil, errors.New("db down"))

	w := suite.serve(router, http.MethodGet, "/public/accommodations", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to get accommodations")
	assert.NotContains(suite.T(), w.Body.String(), "db down")
}

func (suite *AccommodationHandlerTestSuite) TestCreate_Success() {
	router := suite.newRouter(true)
	newID := uuid.New()
	featureID := uuid.New()

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.ownerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.CreateAccommodationRequest) (uuid.UUID, error) {
			assert.Equal(suite.T(), "Villa", req.Title)
			assert.Equal(suite.T(), []uuid.UUID{featureID}, req.Features)
			assert.Nil(suite.T(), req.Amenities)
			return newID, nil
		})

	w := suite.serve(router, http.MethodPost, "/add_accommodation", map[string]interface{}{
		"title":    "Villa",
		"features": []string{featureID.String()},
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got handlers.CreateAccommodationResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), newID, got.ID)
	assert.Equal(suite.T(), "Accommodation created successfully", got.Message)
}

func (suite *AccommodationHandlerTestSuite) TestCreate_MissingFields() {
	router := suite.newRouter(true)
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.ownerID, gomock.Any()).
		Return(uuid.Nil, apperrors.ErrMissingRequiredFields)

	w := suite.serve(router, http.MethodPost, "/add_accommodation", map[string]interface{}{"title": "Villa"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Missing required fields", got.Error)
}

func (suite *AccommodationHandlerTestSuite) TestCreate_InvalidJSON() {
	router := suite.newRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/add_accommodation", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AccommodationHandlerTestSuite) TestUpdate_DistinguishesAbsentAndEmptyLists() {
	router := suite.newRouter(true)
	id := uuid.New()

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.ownerID, id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *service.UpdateAccommodationRequest) error {
			assert.NotNil(suite.T(), req.Features)
			assert.Empty(suite.T(), req.Features)
			assert.Nil(suite.T(), req.Amenities)
			assert.Nil(suite.T(), req.Images)
			return nil
		})

	w := suite.serve(router, http.MethodPut, "/update_accommodation/"+id.String(), map[string]interface{}{
		"features": []string{},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Accommodation updated successfully")
}

func (suite *AccommodationHandlerTestSuite) TestUpdate_NotFound() {
	router := suite.newRouter(true)
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.ownerID, id, gomock.Any()).
		Return(apperrors.ErrAccommodationNotFound)

	w := suite.serve(router, http.MethodPut, "/update_accommodation/"+id.String(), map[string]interface{}{"title": "x"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Accommodation not found")
}

func (suite *AccommodationHandlerTestSuite) TestUpdate_MalformedID() {
	router := suite.newRouter(true)

	w := suite.serve(router, http.MethodPut, "/update_accommodation/not-a-uuid", map[string]interface{}{"title": "x"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AccommodationHandlerTestSuite) TestDelete_Success() {
	router := suite.newRouter(true)
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.ownerID, id).Return(nil)

	w := suite.serve(router, http.MethodDelete, "/delete_accommodation/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Accommodation deleted successfully")
}

func (suite *AccommodationHandlerTestSuite) TestDelete_PersistenceFailure() {
	router := suite.newRouter(true)
	id := uuid.New()
	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.ownerID, id).
		Return(apperrors.NewPersistenceError("Failed to delete accommodation", errors.New("fk violation")))

	w := suite.serve(router, http.MethodDelete, "/delete_accommodation/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Failed to delete accommodation", got.Error)
}

func TestAccommodationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccommodationHandlerTestSuite))
}
