package handlers

import (
	"net/http"

	"accommodation-portal-backend/internal/auth"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccommodationHandler handles HTTP requests for accommodations
type AccommodationHandler struct {
	accommodationService service.AccommodationServiceInterface
}

// NewAccommodationHandler creates a new accommodation handler
func NewAccommodationHandler(accommodationService service.AccommodationServiceInterface) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
	}
}

// CreateAccommodationResponse is returned when an accommodation is created
type CreateAccommodationResponse struct {
	Message string    `json:"message" example:"Accommodation created successfully"`
	ID      uuid.UUID `json:"id"`
}

// ListOwn handles GET /api/sdaowner/get_accommodations
// @Summary List the caller's accommodations
// @Description Returns every accommodation owned by the authenticated user, with feature and amenity ids and stored image paths
// @Tags accommodations
// @Produce json
// @Success 200 {object} service.AccommodationListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/sdaowner/get_accommodations [get]
func (h *AccommodationHandler) ListOwn(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accommodations, err := h.accommodationService.ListForOwner(c, ownerID)
	if err != nil {
		respondError(c, err, "Failed to get accommodations")
		return
	}

	c.JSON(http.StatusOK, service.AccommodationListResponse{Accommodations: accommodations})
}

// ListPublic handles GET /api/public/accommodations
// @Summary List all accommodations
// @Description Public listing of every accommodation with image paths resolved to public URLs
// @Tags accommodations
// @Produce json
// @Success 200 {object} service.AccommodationListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/public/accommodations [get]
func (h *AccommodationHandler) ListPublic(c *gin.Context) {
	accommodations, err := h.accommodationService.ListPublic(c)
	if err != nil {
		respondError(c, err, "Failed to get accommodations")
		return
	}

	c.JSON(http.StatusOK, service.AccommodationListResponse{Accommodations: accommodations})
}

// Create handles POST /api/sdaowner/add_accommodation
// @Summary Create an accommodation
// @Description Creates an accommodation with optional feature, amenity and image id lists. Attached image files are moved under the new accommodation.
// @Tags accommodations
// @Accept json
// @Produce json
// @Param request body service.CreateAccommodationRequest true "Accommodation"
// @Success 201 {object} CreateAccommodationResponse
// @Failure 400 {object} ErrorResponse "Missing required fields or unknown reference"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/sdaowner/add_accommodation [post]
func (h *AccommodationHandler) Create(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req service.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	id, err := h.accommodationService.Create(c, ownerID, &req)
	if err != nil {
		respondError(c, err, "Failed to create accommodation")
		return
	}

	c.JSON(http.StatusCreated, CreateAccommodationResponse{Message: "Accommodation created successfully", ID: id})
}

// Update handles PUT /api/sdaowner/update_accommodation/:id
// @Summary Update an accommodation
// @Description Applies the fields present in the body. A present association list replaces the whole set; an empty list clears it; an absent list is left unchanged.
// @Tags accommodations
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body service.UpdateAccommodationRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Accommodation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/sdaowner/update_accommodation/{id} [put]
func (h *AccommodationHandler) Update(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Accommodation not found"})
		return
	}

	var req service.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if err := h.accommodationService.Update(c, ownerID, id, &req); err != nil {
		respondError(c, err, "Failed to update accommodation")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Accommodation updated successfully"})
}

// Delete handles DELETE /api/sdaowner/delete_accommodation/:id
// @Summary Delete an accommodation
// @Description Removes the accommodation, its folder, its links and any images no other accommodation references
// @Tags accommodations
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Accommodation not found"
// @Failure 500 {object} ErrorResponse "Failed to delete accommodation"
// @Security BearerAuth
// @Router /api/sdaowner/delete_accommodation/{id} [delete]
func (h *AccommodationHandler) Delete(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Accommodation not found"})
		return
	}

	if err := h.accommodationService.Delete(c, ownerID, id); err != nil {
		respondError(c, err, "Failed to delete accommodation")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Accommodation deleted successfully"})
}
