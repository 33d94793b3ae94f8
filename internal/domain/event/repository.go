package event

import "github.com/taskflowhq/taskflow-api/internal/models"

type Repository interface {
	// -------- Events --------
	Events() ([]models.Event, error)

	EventByID(id string) (models.Event, bool, error)

	SaveEvent(ev models.Event) (models.Event, error)

	DeleteEvent(id string) error

	// -------- Event types --------
	EventTypes() ([]models.EventType, error)

	// -------- Users (assignee resolution) --------
	Users() ([]models.User, error)
}
