package handlers

import (
	"net/http"

	"marketplace-service/internal/models"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
)

// OnlineChecker reports whether a live connection is registered for a user.
type OnlineChecker interface {
	IsOnline(userID uint) bool
}

type UserHandler struct {
	userService *services.UserService
	online      OnlineChecker
}

func NewUserHandler(userService *services.UserService, online OnlineChecker) *UserHandler {
	return &UserHandler{userService: userService, online: online}
}

// Register godoc
// @Summary Register a new user
// @Description Register a buyer or merchant account
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterUserRequest true "User registration data"
// @Success 201 {object} models.User "User created successfully"
// @Failure 400 {object} models.ErrorResponse "Bad request - invalid input data"
// @Failure 409 {object} models.ErrorResponse "Username already taken"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user data", err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		storeError(c, "User not found", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, "User not found", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetPresence godoc
// @Summary Get a user's live presence
// @Description Online means a websocket connection is currently registered for the user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.PresenceResponse "Presence"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Router /users/{id}/presence [get]
func (h *UserHandler) GetPresence(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.PresenceResponse{UserID: id, Online: h.online.IsOnline(id)})
}
