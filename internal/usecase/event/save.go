package event

import (
	"context"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

type SaveEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SaveEvent {
	return &SaveEvent{
		repo:  repo,
		audit: audit,
	}
}

// Execute upserts an event on behalf of userID. Title and both timestamps
// are required; endTime earlier than startTime is deliberately accepted,
// the original never validated it.
func (uc *SaveEvent) Execute(
	ctx context.Context,
	userID string,
	ev models.Event,
) (models.Event, error) {

	if ev.Title == "" || ev.StartTime.IsZero() || ev.EndTime.IsZero() {
		return models.Event{}, httperr.ErrBusiness("missing_required_field")
	}

	if ev.Status == "" {
		ev.Status = domain.InitialStatus()
	} else if !domain.IsValidStatus(ev.Status) {
		return models.Event{}, httperr.ErrBusiness("invalid_status")
	}

	if ev.CreatedBy == "" {
		ev.CreatedBy = userID
	}

	saved, err := uc.repo.SaveEvent(ev)
	if err != nil {
		return models.Event{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "event_saved",
		Entity:   "event",
		EntityID: &saved.ID,
	})

	return saved, nil
}
