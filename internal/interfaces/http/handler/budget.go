package handler

import (
	budgetapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/budget"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget ledger endpoints: the cached available
// figure, the accrual timeline, manual adjustments, global rules and
// per-employee overrides.
type BudgetHandler struct {
	BaseHandler
	budgetService *budgetapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *budgetapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetAvailable returns the cached budget view of one employee
func (h *BudgetHandler) GetAvailable(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	available, err := h.budgetService.GetAvailable(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, available)
}

// GetTimeline returns the employee's per-year accrual history
func (h *BudgetHandler) GetTimeline(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	timeline, err := h.budgetService.GetTimeline(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timeline)
}

// RefreshCache recomputes the cached spend and adjustment sums
func (h *BudgetHandler) RefreshCache(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	available, err := h.budgetService.RefreshCache(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, available)
}

// RecalculateTotal re-resolves the accrued total from the timeline
func (h *BudgetHandler) RecalculateTotal(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	available, err := h.budgetService.RecalculateTotal(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, available)
}

// CreateAdjustment records a manual signed ledger entry
func (h *BudgetHandler) CreateAdjustment(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}

	var req budgetapp.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	adjustment, err := h.budgetService.CreateAdjustment(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, adjustment)
}

// DeleteAdjustment removes a manual adjustment
func (h *BudgetHandler) DeleteAdjustment(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	adjustmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid adjustment ID")
		return
	}

	if err := h.budgetService.DeleteAdjustment(c.Request.Context(), actorID, adjustmentID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAdjustments returns all adjustments of one employee
func (h *BudgetHandler) ListAdjustments(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	adjustments, err := h.budgetService.ListAdjustments(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, adjustments)
}

// CreateRule adds a global accrual rule
func (h *BudgetHandler) CreateRule(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}

	var req budgetapp.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rule, err := h.budgetService.CreateRule(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rule)
}

// ListRules returns all global accrual rules
func (h *BudgetHandler) ListRules(c *gin.Context) {
	rules, err := h.budgetService.ListRules(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rules)
}

// CreateOverride adds a per-employee accrual override
func (h *BudgetHandler) CreateOverride(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}

	var req budgetapp.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	override, err := h.budgetService.CreateOverride(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, override)
}

// ListOverrides returns an employee's overrides
func (h *BudgetHandler) ListOverrides(c *gin.Context) {
	employeeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	overrides, err := h.budgetService.ListOverrides(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overrides)
}

// DeleteOverride removes a per-employee override
func (h *BudgetHandler) DeleteOverride(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	overrideID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid override ID")
		return
	}

	if err := h.budgetService.DeleteOverride(c.Request.Context(), actorID, overrideID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
