package calendar

import (
	"time"

	"github.com/taskflowhq/taskflow-api/internal/models"
)

// maxVisibleEvents caps how many events a grid cell presents before folding
// the rest into a "+N more" indicator.
const maxVisibleEvents = 3

type Cell struct {
	Date    time.Time      `json:"date"`
	InMonth bool           `json:"inMonth"`
	Today   bool           `json:"today"`
	Events  []models.Event `json:"events"`
	Visible []models.Event `json:"visible"`
	More    int            `json:"more"`
}

type Grid struct {
	Anchor time.Time `json:"anchor"`
	Weeks  [][]Cell  `json:"weeks"`
}

// MonthGrid computes the month view for the month containing anchor: full
// weeks from the week holding the 1st through the week holding the last day,
// using the given week-start convention. Events are binned onto the cell
// whose calendar day (local time) matches their start time, in the order
// they were stored.
func MonthGrid(anchor time.Time, weekStart time.Weekday, events []models.Event, now time.Time) Grid {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := startOfWeek(monthStart, weekStart)
	gridEnd := startOfWeek(monthEnd, weekStart).AddDate(0, 0, 6)

	byDay := make(map[string][]models.Event)
	for _, ev := range events {
		key := ev.StartTime.Format("2006-01-02")
		byDay[key] = append(byDay[key], ev)
	}

	today := now.Format("2006-01-02")

	grid := Grid{Anchor: anchor}
	var week []Cell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		dayEvents := byDay[key]

		visible := dayEvents
		more := 0
		if len(dayEvents) > maxVisibleEvents {
			visible = dayEvents[:maxVisibleEvents]
			more = len(dayEvents) - maxVisibleEvents
		}

		week = append(week, Cell{
			Date:    day,
			InMonth: day.Month() == monthStart.Month(),
			Today:   key == today,
			Events:  dayEvents,
			Visible: visible,
			More:    more,
		})

		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}

	return grid
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// AddMonths shifts t by exactly n calendar months, clamping the day of month
// when the target month is shorter (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	first = first.AddDate(0, n, 0)

	day := t.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
