package handlers

import (
	"net/http"

	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves feature and amenity master records
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// FeatureListResponse wraps the feature catalog
type FeatureListResponse struct {
	Features []models.Feature `json:"features"`
}

// AmenityListResponse wraps the amenity catalog
type AmenityListResponse struct {
	Amenities []models.Amenity `json:"amenities"`
}

// ListFeatures handles GET /api/public/features
// @Summary List features
// @Tags catalog
// @Produce json
// @Success 200 {object} FeatureListResponse
// @Router /api/public/features [get]
func (h *CatalogHandler) ListFeatures(c *gin.Context) {
	features, err := h.catalogService.ListFeatures(c)
	if err != nil {
		respondError(c, err, "Failed to get features")
		return
	}
	c.JSON(http.StatusOK, FeatureListResponse{Features: features})
}

// ListAmenities handles GET /api/public/amenities
// @Summary List amenities
// @Tags catalog
// @Produce json
// @Success 200 {object} AmenityListResponse
// @Router /api/public/amenities [get]
func (h *CatalogHandler) ListAmenities(c *gin.Context) {
	amenities, err := h.catalogService.ListAmenities(c)
	if err != nil {
		respondError(c, err, "Failed to get amenities")
		return
	}
	c.JSON(http.StatusOK, AmenityListResponse{Amenities: amenities})
}

// CreateFeature handles POST /api/admin/features
// @Summary Create a feature
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CatalogEntryRequest true "Feature"
// @Success 201 {object} models.Feature
// @Failure 400 {object} ErrorResponse "Missing name"
// @Failure 409 {object} ErrorResponse "Feature already exists"
// @Security BearerAuth
// @Router /api/admin/features [post]
func (h *CatalogHandler) CreateFeature(c *gin.Context) {
	var req service.CatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	feature, err := h.catalogService.CreateFeature(c, &req)
	if err != nil {
		respondError(c, err, "Failed to create feature")
		return
	}
	c.JSON(http.StatusCreated, feature)
}

// CreateAmenity handles POST /api/admin/amenities
// @Summary Create an amenity
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CatalogEntryRequest true "Amenity"
// @Success 201 {object} models.Amenity
// @Failure 400 {object} ErrorResponse "Missing name"
// @Failure 409 {object} ErrorResponse "Amenity already exists"
// @Security BearerAuth
// @Router /api/admin/amenities [post]
func (h *CatalogHandler) CreateAmenity(c *gin.Context) {
	var req service.CatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	amenity, err := h.catalogService.CreateAmenity(c, &req)
	if err != nil {
		respondError(c, err, "Failed to create amenity")
		return
	}
	c.JSON(http.StatusCreated, amenity)
}
