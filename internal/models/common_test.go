package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(http.StatusNotFound, "Product not found", nil)
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "Product not found"}, resp)

	resp = NewErrorResponse(http.StatusInternalServerError, "Internal server error", errors.New("db closed"))
	assert.Equal(t, "db closed", resp.Details)
}
