package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
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

type ImageHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockImage *mocks.MockImageServiceInterface
	router    *gin.Engine
	ownerID   uuid.UUID
}

func (suite *ImageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockImage = mocks.NewMockImageServiceInterface(suite.ctrl)
	suite.ownerID = uuid.New()

	handler := handlers.NewImageHandler(suite.mockImage, 1024)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.ownerID.String())
		c.Next()
	})
	suite.router.POST("/upload_image", handler.Upload)
}

func (suite *ImageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImageHandlerTestSuite) multipartRequest(target string, fields map[string]string, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		suite.Require().NoError(writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		suite.Require().NoError(err)
		_, err = part.Write(content)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (suite *ImageHandlerTestSuite) TestUpload_Unattached() {
	resp := &service.UploadImageResponse{ID: uuid.New(), Path: "uploads/o/photo.jpg", URL: "http://localhost/uploads/o/photo.jpg"}
	suite.mockImage.EXPECT().
		Upload(gomock.Any(), suite.ownerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UploadImageRequest) (*service.UploadImageResponse, error) {
			assert.Equal(suite.T(), "photo.jpg", req.Filename)
			assert.Nil(suite.T(), req.AccommodationID)
			data, err := io.ReadAll(req.Content)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), "jpeg-bytes", string(data))
			return resp, nil
		})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartRequest("/upload_image", nil, "photo.jpg", []byte("jpeg-bytes")))

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.UploadImageResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), resp.ID, got.ID)
	assert.Equal(suite.T(), resp.Path, got.Path)
}

func (suite *ImageHandlerTestSuite) TestUpload_AccommodationFromFormField() {
	accID := uuid.New()
	suite.mockImage.EXPECT().
		Upload(gomock.Any(), suite.ownerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UploadImageRequest) (*service.UploadImageResponse, error) {
			if assert.NotNil(suite.T(), req.AccommodationID) {
				assert.Equal(suite.T(), accID, *req.AccommodationID)
			}
			return &service.UploadImageResponse{ID: uuid.New()}, nil
		})

	w := httptest.NewRecorder()
	req := suite.multipartRequest("/upload_image", map[string]string{"accommodation_id": accID.String()}, "a.png", []byte("png"))
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ImageHandlerTestSuite) TestUpload_AccommodationFromQuery() {
	accID := uuid.New()
	suite.mockImage.EXPECT().
		Upload(gomock.Any(), suite.ownerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UploadImageRequest) (*service.UploadImageResponse, error) {
			if assert.NotNil(suite.T(), req.AccommodationID) {
				assert.Equal(suite.T(), accID, *req.AccommodationID)
			}
			return &service.UploadImageResponse{ID: uuid.New()}, nil
		})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartRequest("/upload_image?accommodation_id="+accID.String(), nil, "a.png", []byte("png")))

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ImageHandlerTestSuite) TestUpload_NoFile() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartRequest("/upload_image", map[string]string{"x": "y"}, "", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "No file provided")
}

func (suite *ImageHandlerTestSuite) TestUpload_TooLarge() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartRequest("/upload_image", nil, "big.jpg", bytes.Repeat([]byte("a"), 2048)))

	assert.Equal(suite.T(), http.StatusRequestEntityTooLarge, w.Code)
}

func (suite *ImageHandlerTestSuite) TestUpload_InvalidExtension() {
	suite.mockImage.EXPECT().
		Upload(gomock.Any(), suite.ownerID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidExtension)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartRequest("/upload_image", nil, "script.exe", []byte("MZ")))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "File type not allowed")
}

func (suite *ImageHandlerTestSuite) TestUpload_ForeignAccommodation() {
	suite.mockImage.EXPECT().
		Upload(gomock.Any(), suite.ownerID, gomock.Any()).
		Return(nil, apperrors.ErrAccommodationNotFound)

	w := httptest.NewRecorder()
	req := suite.multipartRequest("/upload_image", map[string]string{"accommodation_id": uuid.NewString()}, "a.jpg", []byte("x"))
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestImageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}
