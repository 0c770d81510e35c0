package handlers

import (
	"net/http"

	"accommodation-portal-backend/internal/auth"
	"accommodation-portal-backend/internal/database/models"
	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomHandler handles rooms of the caller's accommodations
type RoomHandler struct {
	roomService service.RoomServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomServiceInterface) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// RoomListResponse wraps the rooms of an accommodation
type RoomListResponse struct {
	Rooms []models.Room `json:"rooms"`
}

// ids resolves the caller and the :id path parameter, writing the response on failure
func (h *RoomHandler) ids(c *gin.Context) (ownerID, accommodationID uuid.UUID, ok bool) {
	ownerID, ok = auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}
	accommodationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Accommodation not found"})
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, accommodationID, true
}

func roomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room not found"})
		return uuid.Nil, false
	}
	return id, true
}

// ListRooms handles GET /api/sdaowner/accommodations/:id/rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} RoomListResponse
// @Failure 404 {object} ErrorResponse "Accommodation not found"
// @Security BearerAuth
// @Router /api/sdaowner/accommodations/{id}/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	ownerID, accommodationID, ok := h.ids(c)
	if !ok {
		return
	}

	rooms, err := h.roomService.ListRooms(c, ownerID, accommodationID)
	if err != nil {
		respondError(c, err, "Failed to get rooms")
		return
	}
	c.JSON(http.StatusOK, RoomListResponse{Rooms: rooms})
}

// CreateRoom handles POST /api/sdaowner/accommodations/:id/rooms
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body service.RoomRequest true "Room"
// @Success 201 {object} models.Room
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Accommodation not found"
// @Security BearerAuth
// @Router /api/sdaowner/accommodations/{id}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	ownerID, accommodationID, ok := h.ids(c)
	if !ok {
		return
	}

	var req service.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c, ownerID, accommodationID, &req)
	if err != nil {
		respondError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/sdaowner/accommodations/:id/rooms/:roomId
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param roomId path string true "Room ID"
// @Param request body service.RoomRequest true "Fields to change"
// @Success 200 {object} models.Room
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /api/sdaowner/accommodations/{id}/rooms/{roomId} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	ownerID, accommodationID, ok := h.ids(c)
	if !ok {
		return
	}
	id, ok := roomID(c)
	if !ok {
		return
	}

	var req service.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c, ownerID, accommodationID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/sdaowner/accommodations/:id/rooms/:roomId
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param roomId path string true "Room ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /api/sdaowner/accommodations/{id}/rooms/{roomId} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	ownerID, accommodationID, ok := h.ids(c)
	if !ok {
		return
	}
	id, ok := roomID(c)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c, ownerID, accommodationID, id); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Room deleted successfully"})
}
