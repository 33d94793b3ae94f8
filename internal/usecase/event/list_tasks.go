package event

import (
	"context"

	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/dto"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

type ListTasks struct {
	repo domain.Repository
}

func NewListTasks(
	repo domain.Repository,
) *ListTasks {
	return &ListTasks{
		repo: repo,
	}
}

// Execute returns the task-list projection for a category tab. Events whose
// type was deleted resolve to Unknown and only survive the "all" tab.
func (uc *ListTasks) Execute(
	ctx context.Context,
	tab domain.Tab,
) ([]dto.TaskDTO, error) {

	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	types, err := uc.repo.EventTypes()
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.Users()
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterByCategory(events, types, tab)

	out := make([]dto.TaskDTO, 0, len(filtered))
	for _, ev := range filtered {
		et := domain.ResolveType(ev, types)

		names := make([]string, 0, len(ev.AssignedTo))
		for _, id := range ev.AssignedTo {
			names = append(names, userName(users, id))
		}

		out = append(out, dto.TaskDTO{
			ID:            ev.ID,
			Title:         ev.Title,
			Description:   ev.Description,
			StartTime:     ev.StartTime,
			EndTime:       ev.EndTime,
			Status:        string(ev.Status),
			Location:      ev.Location,
			TypeName:      et.Name,
			TypeColor:     et.Color,
			TypeCategory:  string(et.Category),
			AssignedTo:    ev.AssignedTo,
			AssigneeNames: names,
		})
	}

	return out, nil
}

func userName(users []models.User, id string) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return "Unknown"
}
