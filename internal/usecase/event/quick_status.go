package event

import (
	"context"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

// QuickStatus runs the guarded quick-action transitions (start, complete).
// Arbitrary status changes from the edit form go through SaveEvent with
// domain.Override semantics instead.
type QuickStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewQuickStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *QuickStatus {
	return &QuickStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *QuickStatus) Start(ctx context.Context, userID, eventID string) (models.Event, error) {
	return uc.apply(ctx, userID, eventID, domain.Start)
}

func (uc *QuickStatus) Complete(ctx context.Context, userID, eventID string) (models.Event, error) {
	return uc.apply(ctx, userID, eventID, domain.Complete)
}

func (uc *QuickStatus) apply(
	ctx context.Context,
	userID string,
	eventID string,
	transition func(*models.Event) error,
) (models.Event, error) {

	ev, found, err := uc.repo.EventByID(eventID)
	if err != nil {
		return models.Event{}, err
	}
	if !found {
		return models.Event{}, httperr.ErrBusiness("event_not_found")
	}

	if err := transition(&ev); err != nil {
		return models.Event{}, err
	}

	saved, err := uc.repo.SaveEvent(ev)
	if err != nil {
		return models.Event{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "event_status_changed",
		Entity:   "event",
		EntityID: &saved.ID,
		Metadata: map[string]string{"status": string(saved.Status)},
	})

	return saved, nil
}
