package handler

import (
	"strconv"

	reconapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/reconciliation"
	"github.com/gin-gonic/gin"
)

// PurchaseSyncHandler handles reconciliation run endpoints
type PurchaseSyncHandler struct {
	BaseHandler
	syncService *reconapp.PurchaseSyncService
}

// NewPurchaseSyncHandler creates a new PurchaseSyncHandler
func NewPurchaseSyncHandler(syncService *reconapp.PurchaseSyncService) *PurchaseSyncHandler {
	return &PurchaseSyncHandler{
		syncService: syncService,
	}
}

// Trigger starts one reconciliation run. A run already in flight returns
// a conflict.
func (h *PurchaseSyncHandler) Trigger(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid actor ID")
		return
	}

	run, err := h.syncService.Run(c.Request.Context(), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, run)
}

// GetRun returns one run log
func (h *PurchaseSyncHandler) GetRun(c *gin.Context) {
	runID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid run ID")
		return
	}

	run, err := h.syncService.GetRun(c.Request.Context(), runID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, run)
}

// ListRuns returns the most recent run logs, newest first
func (h *PurchaseSyncHandler) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	runs, err := h.syncService.ListRecentRuns(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, runs)
}
