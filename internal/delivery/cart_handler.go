package delivery

import (
	"net/http"

	"shop_service/internal/domain"
	"shop_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

type CartItemRequest struct {
	ProductID int         `json:"product_id" binding:"required"`
	Quantity  int         `json:"quantity"`
	Cart      domain.Cart `json:"cart"`
}

type CartRequest struct {
	Cart domain.Cart `json:"cart"`
}

type CartResponse struct {
	Cart domain.Cart `json:"cart"`
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.POST("", h.GetCart)
		cart.POST("/add", h.AddItem)
		cart.PUT("/update", h.UpdateItem)
		cart.DELETE("/remove/:product_id", h.RemoveItem)
	}
}

// GetCart prices a cart sent as a bare {"<product_id>": quantity} object.
func (h *CartHandler) GetCart(c *gin.Context) {
	var cart domain.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		h.log.Warnf("Failed to bind JSON for cart details: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	details, err := h.useCase.Details(c.Request.Context(), cart)
	if err != nil {
		h.log.Errorf("Failed to compute cart details: %v", err)
		FailFromError(c, "Failed to retrieve cart", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", details)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for add to cart: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.useCase.AddItem(c.Request.Context(), req.Cart, req.ProductID, req.Quantity)
	if err != nil {
		h.log.Warnf("Failed to add product %d to cart: %v", req.ProductID, err)
		FailFromError(c, "Failed to add item to cart", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Item added to cart", CartResponse{Cart: cart})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for cart update: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.useCase.UpdateItem(c.Request.Context(), req.Cart, req.ProductID, req.Quantity)
	if err != nil {
		h.log.Warnf("Failed to update product %d in cart: %v", req.ProductID, err)
		FailFromError(c, "Failed to update cart", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Cart updated", CartResponse{Cart: cart})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	idStr := c.Param("product_id")
	productID, ok := parsePositiveID(idStr)
	if !ok {
		h.log.Warnf("Invalid product ID parameter for cart removal: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for cart removal: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.useCase.RemoveItem(req.Cart, productID)
	if err != nil {
		h.log.Warnf("Failed to remove product %d from cart: %v", productID, err)
		FailFromError(c, "Failed to remove item from cart", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Item removed from cart", CartResponse{Cart: cart})
}
