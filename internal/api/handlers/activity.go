package handlers

import (
	"net/http"

	"accommodation-portal-backend/internal/auth"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the audit log
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ActivityListResponse wraps a list of audit entries
type ActivityListResponse struct {
	Activities []service.ActivityResponse `json:"activities"`
}

// ListOwn handles GET /api/sdaowner/activities
// @Summary List the caller's activity
// @Description Audit entries of the authenticated owner, newest first
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} ActivityListResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/sdaowner/activities [get]
func (h *ActivityHandler) ListOwn(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err, "Invalid limit")
		return
	}

	entries, err := h.activityService.ListForOwner(c, ownerID, limit)
	if err != nil {
		respondError(c, err, "Failed to get activities")
		return
	}

	c.JSON(http.StatusOK, ActivityListResponse{Activities: entries})
}

// ListAll handles GET /api/admin/activities
// @Summary List all activity
// @Description Audit entries of every owner, newest first
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} ActivityListResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Security BearerAuth
// @Router /api/admin/activities [get]
func (h *ActivityHandler) ListAll(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err, "Invalid limit")
		return
	}

	entries, err := h.activityService.ListAll(c, limit)
	if err != nil {
		respondError(c, err, "Failed to get activities")
		return
	}

	c.JSON(http.StatusOK, ActivityListResponse{Activities: entries})
}
