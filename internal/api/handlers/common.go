package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter. It writes a 400 response
// and returns false when the value is not usable.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(http.StatusBadRequest, "Invalid "+name, nil))
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.NewErrorResponse(http.StatusBadRequest, message, err))
}

// storeError maps repository failures onto HTTP statuses.
func storeError(c *gin.Context, notFoundMessage string, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.NewErrorResponse(http.StatusNotFound, notFoundMessage, nil))
	case errors.Is(err, repositories.ErrUsernameTaken):
		c.JSON(http.StatusConflict, models.NewErrorResponse(http.StatusConflict, "Username already taken", nil))
	default:
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(http.StatusInternalServerError, "Internal server error", err))
	}
}
