package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/httpresp"
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

type EventTypeHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewEventTypeHandler(st *store.Store, auditDispatcher *audit.Dispatcher) *EventTypeHandler {
	return &EventTypeHandler{store: st, audit: auditDispatcher}
}

type SaveEventTypeRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Color    string `json:"color" binding:"required"`
}

func (h *EventTypeHandler) List(c *gin.Context) {
	types, err := h.store.EventTypes()
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, types)
}

func (h *EventTypeHandler) Save(c *gin.Context) {
	var req SaveEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := models.EventCategory(req.Category)
	switch category {
	case models.CategoryCleaning, models.CategoryMaintenance, models.CategoryGeneral, models.CategoryMeeting:
	default:
		httperr.BadRequest(c, "invalid_category", "unknown category")
		return
	}

	saved, err := h.store.SaveEventType(models.EventType{
		ID:       req.ID,
		Name:     req.Name,
		Category: category,
		Color:    req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, saved)
}

// Delete orphans events still referencing the type; they resolve to the
// Unknown fallback from now on.
func (h *EventTypeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteEventType(id); err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "event_type_deleted",
		Entity:   "event_type",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
