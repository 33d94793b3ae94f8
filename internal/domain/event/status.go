package event

import (
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

// ===============================
// Event Status
// ===============================

// The quick-action transition graph. Anything outside it goes through the
// unrestricted Override path instead.

// CanStart guards the scheduled -> in-progress quick action.
func CanStart(current models.EventStatus) error {
	if current != models.StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete guards the -> completed quick action, allowed from any
// non-completed status.
func CanComplete(current models.EventStatus) error {
	if current == models.StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() models.EventStatus {
	return models.StatusScheduled
}

func IsValidStatus(s models.EventStatus) bool {
	switch s {
	case models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}
