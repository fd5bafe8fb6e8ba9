package delivery

import (
	"net/http"

	"shop_service/internal/domain"
	"shop_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	CategoryID  int      `json:"category_id" binding:"required"`
	ImageURL    *string  `json:"image_url"`
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.GET("/category/:category_id", h.ListProductsByCategory)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
	router.GET("/categories/:id/products", h.ListProductsByCategory)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}

	createdProduct, err := h.useCase.CreateProduct(c.Request.Context(), product)
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", req.Name, err)
		FailFromError(c, "Failed to create product", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", createdProduct)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	idStr := c.Param("id")
	id, ok := parsePositiveID(idStr)
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		FailFromError(c, "Failed to retrieve product", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, ok := parsePositiveID(idStr)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var update domain.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if update.IsEmpty() {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: no fields provided for update")
		return
	}

	updatedProduct, err := h.useCase.UpdateProduct(c.Request.Context(), id, update)
	if err != nil {
		h.log.Warnf("Failed to update product ID %d: %v", id, err)
		FailFromError(c, "Failed to update product", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product updated successfully", updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, ok := parsePositiveID(idStr)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		FailFromError(c, "Failed to delete product", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit, offset := parsePagination(c)

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, ok := parsePositiveID(categoryIDStr)
		if !ok {
			h.log.Warnf("Invalid category_id filter parameter: %s", categoryIDStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid category_id format")
			return
		}
		h.respondWithCategoryProducts(c, categoryID, limit, offset)
		return
	}

	products, err := h.useCase.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		FailFromError(c, "Failed to retrieve products", err)
		return
	}

	if len(products) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found matching criteria", []domain.Product{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

// ListProductsByCategory serves both /products/category/:category_id and
// /categories/:id/products.
func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	raw := c.Param("category_id")
	if raw == "" {
		raw = c.Param("id")
	}
	categoryID, ok := parsePositiveID(raw)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", raw)
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	limit, offset := parsePagination(c)
	h.respondWithCategoryProducts(c, categoryID, limit, offset)
}

func (h *ProductHandler) respondWithCategoryProducts(c *gin.Context, categoryID, limit, offset int) {
	products, err := h.useCase.ListProductsByCategory(c.Request.Context(), categoryID, limit, offset)
	if err != nil {
		h.log.Warnf("Failed to list products for category %d: %v", categoryID, err)
		FailFromError(c, "Failed to retrieve products", err)
		return
	}

	if len(products) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found matching criteria", []domain.Product{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}
