package handler

import (
	budgetapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/budget"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee roster endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *budgetapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *budgetapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// LinkHibobRequest attaches an external HR identity to an employee
type LinkHibobRequest struct {
	HibobID string `json:"hibob_id" binding:"required"`
}

// Create registers a new employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}

	var req budgetapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// List returns a page of employees
func (h *EmployeeHandler) List(c *gin.Context) {
	filter := parseFilter(c)
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active == "true"
	}
	if linked := c.Query("hibob_linked"); linked != "" {
		filter.Filters["hibob_linked"] = linked == "true"
	}

	employees, total, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, employees, total, filter.Page, filter.PageSize)
}

// Get returns one employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// LinkHibob attaches an external HR identity to the employee
func (h *EmployeeHandler) LinkHibob(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req LinkHibobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.LinkHibob(c.Request.Context(), actorID, employeeID, req.HibobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Deactivate marks an employee inactive
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Deactivate(c.Request.Context(), actorID, employeeID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
