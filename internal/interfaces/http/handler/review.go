package handler

import (
	reconapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/gin-gonic/gin"
)

// ReviewHandler handles purchase review endpoints: the reconciliation
// queue and its manual resolutions.
type ReviewHandler struct {
	BaseHandler
	reviewService *reconapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *reconapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// List returns a page of reviews in the requested status
func (h *ReviewHandler) List(c *gin.Context) {
	status := reconciliation.ReviewStatus(c.DefaultQuery("status", string(reconciliation.ReviewStatusPending)))
	if !status.IsValid() {
		h.BadRequest(c, "Unknown review status")
		return
	}

	filter := parseFilter(c)
	reviews, total, err := h.reviewService.ListByStatus(c.Request.Context(), status, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reviews, total, filter.Page, filter.PageSize)
}

// Get returns one review
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// ResolveMatch binds a pending review to a chosen order
func (h *ReviewHandler) ResolveMatch(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var req reconapp.ResolveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.ResolveMatch(c.Request.Context(), reviewID, actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// ResolveAdjust debits the employee's budget for a pending review
func (h *ReviewHandler) ResolveAdjust(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.ResolveAdjust(c.Request.Context(), reviewID, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// ResolveDismiss closes a pending review without budget impact
func (h *ReviewHandler) ResolveDismiss(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.ResolveDismiss(c.Request.Context(), reviewID, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}
