package event

import (
	"context"
	"time"

	"github.com/taskflowhq/taskflow-api/internal/calendar"
	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
)

type MonthView struct {
	repo      domain.Repository
	weekStart time.Weekday
	now       func() time.Time
}

func NewMonthView(
	repo domain.Repository,
	weekStart time.Weekday,
) *MonthView {
	return &MonthView{
		repo:      repo,
		weekStart: weekStart,
		now:       time.Now,
	}
}

// Execute computes the month grid for year/month. Only the month view is
// rendered; week and day remain placeholders.
func (uc *MonthView) Execute(
	ctx context.Context,
	year int,
	month int,
) (calendar.Grid, error) {

	if month < 1 || month > 12 {
		return calendar.Grid{}, httperr.ErrBusiness("invalid_month")
	}

	events, err := uc.repo.Events()
	if err != nil {
		return calendar.Grid{}, err
	}

	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return calendar.MonthGrid(anchor, uc.weekStart, events, uc.now()), nil
}
