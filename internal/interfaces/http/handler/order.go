package handler

import (
	orderapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order endpoints: checkout and the status state
// machine.
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create converts the employee's cart into a pending order
func (h *OrderHandler) Create(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.CreateFromCart(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// ListByEmployee returns a page of the employee's orders
func (h *OrderHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	filter := parseFilter(c)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	orders, total, err := h.orderService.ListByEmployee(c.Request.Context(), employeeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// Get returns one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Transition moves an order to a new status. Illegal transitions return a
// conflict carrying the current status and the legal next states.
func (h *OrderHandler) Transition(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderapp.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), orderID, actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
