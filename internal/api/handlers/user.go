package handlers

import (
	"net/http"
	"strconv"

	"accommodation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles admin account management
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UserMessageResponse is returned by user create and update
type UserMessageResponse struct {
	Message string                `json:"message" example:"User created successfully"`
	User    *service.UserResponse `json:"user"`
}

// ListUsers handles GET /api/admin/users
// @Summary List accounts
// @Description Returns every account ordered by username
// @Tags admin
// @Produce json
// @Success 200 {object} service.UsersListResponse
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c)
	if err != nil {
		respondError(c, err, "Failed to get users")
		return
	}

	c.JSON(http.StatusOK, service.UsersListResponse{Users: users})
}

// CreateUser handles POST /api/admin/users
// @Summary Create an account
// @Description Creates an account; role defaults to admin and status to Active
// @Tags admin
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} UserMessageResponse
// @Failure 400 {object} ErrorResponse "Missing required fields"
// @Failure 409 {object} ErrorResponse "Username or email already exists"
// @Security BearerAuth
// @Router /api/admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c, &req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, UserMessageResponse{Message: "User created successfully", User: user})
}

// UpdateUser handles PUT /api/admin/users/:id
// @Summary Update an account
// @Description Partial update; the password is re-hashed only when provided
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} UserMessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Username or email already exists"
// @Security BearerAuth
// @Router /api/admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, UserMessageResponse{Message: "User updated successfully", User: user})
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete an account
// @Description Deletes an account. An owner still holding accommodations is refused unless cascade=true, which deletes those accommodations first.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Param cascade query bool false "Delete the owner's accommodations too"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "User still owns accommodations"
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	cascade := false
	if raw := c.Query("cascade"); raw != "" {
		cascade, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid cascade flag"})
			return
		}
	}

	if err := h.userService.DeleteUser(c, id, cascade); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
