package handlers

import (
	"net/http"

	"marketplace-service/internal/models"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
// @Summary List products
// @Description Get the whole product catalog
// @Tags products
// @Produce json
// @Success 200 {array} models.Product "Product catalog"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		storeError(c, "Products not found", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product
// @Description Get a single product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product"
// @Failure 400 {object} models.ErrorResponse "Invalid product ID"
// @Failure 404 {object} models.ErrorResponse "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, "Product not found", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product "Product created"
// @Failure 400 {object} models.ErrorResponse "Invalid product data"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid product data", err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		storeError(c, "Product not found", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}
