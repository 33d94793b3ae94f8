package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/httpresp"
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/store"
	ucEvent "github.com/taskflowhq/taskflow-api/internal/usecase/event"
)

type EventHandler struct {
	store       *store.Store
	saveUC      *ucEvent.SaveEvent
	quickStatus *ucEvent.QuickStatus
	listTasks   *ucEvent.ListTasks
}

func NewEventHandler(
	st *store.Store,
	saveUC *ucEvent.SaveEvent,
	quickStatus *ucEvent.QuickStatus,
	listTasks *ucEvent.ListTasks,
) *EventHandler {
	return &EventHandler{
		store:       st,
		saveUC:      saveUC,
		quickStatus: quickStatus,
		listTasks:   listTasks,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.store.Events()
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, events)
}

// Save accepts the full event shape from the edit form, including an
// arbitrary status: the manual path is deliberately unguarded.
func (h *EventHandler) Save(c *gin.Context) {
	var ev models.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	saved, err := h.saveUC.Execute(c.Request.Context(), currentUserID(c), ev)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, saved)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteEvent(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *EventHandler) Start(c *gin.Context) {
	ev, err := h.quickStatus.Start(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) Complete(c *gin.Context) {
	ev, err := h.quickStatus.Complete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) ListTasks(c *gin.Context) {
	tab := domain.Tab(c.DefaultQuery("tab", string(domain.TabAll)))
	switch tab {
	case domain.TabAll, domain.TabCleaning, domain.TabMaintenance:
	default:
		httperr.BadRequest(c, "invalid_tab", "tab must be all, cleaning or maintenance")
		return
	}

	tasks, err := h.listTasks.Execute(c.Request.Context(), tab)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, tasks)
}
