package event

import (
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ev *models.Event) error {
	if err := CanStart(ev.Status); err != nil {
		return err
	}
	ev.Status = models.StatusInProgress
	return nil
}

func Complete(ev *models.Event) error {
	if err := CanComplete(ev.Status); err != nil {
		return err
	}
	ev.Status = models.StatusCompleted
	return nil
}

// Override sets any valid status without consulting the transition graph.
// This is the manual-edit escape hatch: the lifecycle is advisory and only
// the quick actions are guarded.
func Override(ev *models.Event, status models.EventStatus) error {
	if !IsValidStatus(status) {
		return httperr.ErrBusiness("invalid_status")
	}
	ev.Status = status
	return nil
}
