package handlers

import (
	"net/http"

	"marketplace-service/internal/models"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart godoc
// @Summary Get a user's cart
// @Tags cart
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.CartItem "Cart items"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Router /cart/{userId} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	items, err := h.cartService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		storeError(c, "Cart not found", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add an item to a cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.CreateCartItemRequest true "Cart item"
// @Success 200 {object} models.CartItem "Stored cart item"
// @Failure 400 {object} models.ErrorResponse "Invalid cart item data"
// @Router /cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.CreateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid cart item data", err)
		return
	}

	item, err := h.cartService.Add(c.Request.Context(), &req)
	if err != nil {
		storeError(c, "Cart item not found", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateCartItem godoc
// @Summary Change the quantity of a cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.CartItem "Updated cart item"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Cart item not found"
// @Router /cart/{id} [patch]
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid quantity", err)
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		storeError(c, "Cart item not found", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart godoc
// @Summary Remove a cart item
// @Description Removing an unknown item is not an error
// @Tags cart
// @Param id path int true "Cart item ID"
// @Success 204 "Removed"
// @Failure 400 {object} models.ErrorResponse "Invalid cart item ID"
// @Router /cart/{id} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Remove(c.Request.Context(), id); err != nil {
		storeError(c, "Cart item not found", err)
		return
	}
	c.Status(http.StatusNoContent)
}
