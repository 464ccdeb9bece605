package handler

import (
	orderapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/order"
	"github.com/gin-gonic/gin"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *orderapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *orderapp.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Get returns the employee's cart with snapshot and live prices
func (h *CartHandler) Get(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	lines, err := h.cartService.GetCart(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// AddItem puts a product into the employee's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req orderapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.cartService.AddItem(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, line)
}

// RemoveItem removes one cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lineID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), lineID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Clear empties the employee's cart
func (h *CartHandler) Clear(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), employeeID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
