package calendar

import (
	"time"

	"github.com/taskflowhq/taskflow-api/internal/httperr"
)

type ViewMode string

const (
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
	ModeDay   ViewMode = "day"
)

// View tracks the navigation state of one calendar: the anchor month, the
// selected day and the rendering mode. Only month rendering exists; week and
// day are tracked but deliberately not implemented.
type View struct {
	Mode         ViewMode
	Anchor       time.Time
	SelectedDate time.Time
	WeekStart    time.Weekday
}

func NewView(anchor time.Time, weekStart time.Weekday) *View {
	return &View{
		Mode:      ModeMonth,
		Anchor:    anchor,
		WeekStart: weekStart,
	}
}

// SetMode switches the tracked view mode. week and day have no rendering
// implementation and are rejected rather than silently accepted.
func (v *View) SetMode(mode ViewMode) error {
	switch mode {
	case ModeMonth:
		v.Mode = mode
		return nil
	case ModeWeek, ModeDay:
		return httperr.ErrBusiness("view_not_implemented")
	default:
		return httperr.ErrBusiness("invalid_view_mode")
	}
}

// Select marks a day as selected and leaves any follow-up (event creation)
// to the caller.
func (v *View) Select(date time.Time) {
	v.SelectedDate = date
}

func (v *View) NextMonth() {
	v.Anchor = AddMonths(v.Anchor, 1)
}

func (v *View) PrevMonth() {
	v.Anchor = AddMonths(v.Anchor, -1)
}
