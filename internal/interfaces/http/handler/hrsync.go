package handler

import (
	hrsyncapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/hrsync"
	"github.com/gin-gonic/gin"
)

// ExpenseSyncHandler handles push-back of delivered orders into the
// external HR expense table.
type ExpenseSyncHandler struct {
	BaseHandler
	syncService *hrsyncapp.ExpenseSyncService
}

// NewExpenseSyncHandler creates a new ExpenseSyncHandler
func NewExpenseSyncHandler(syncService *hrsyncapp.ExpenseSyncService) *ExpenseSyncHandler {
	return &ExpenseSyncHandler{
		syncService: syncService,
	}
}

// SyncOrder pushes a delivered order's unsynced items to the HR system
func (h *ExpenseSyncHandler) SyncOrder(c *gin.Context) {
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

	result, err := h.syncService.SyncOrder(c.Request.Context(), orderID, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UnsyncOrder deletes the order's entries from the HR system and clears
// the sync markers
func (h *ExpenseSyncHandler) UnsyncOrder(c *gin.Context) {
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

	result, err := h.syncService.UnsyncOrder(c.Request.Context(), orderID, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
