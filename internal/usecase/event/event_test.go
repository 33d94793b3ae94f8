package event

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	domain "github.com/taskflowhq/taskflow-api/internal/domain/event"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

func newFixtures(t *testing.T) (*store.Store, *audit.Dispatcher) {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	return store.New(st), audit.NewDispatcher(audit.New(st.DB()))
}

func TestSaveEventValidatesRequiredFields(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	uc := NewSaveEvent(repo, dispatcher)
	ctx := context.Background()

	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		ev   models.Event
	}{
		{"missing title", models.Event{StartTime: start, EndTime: start.Add(time.Hour)}},
		{"missing start", models.Event{Title: "t", EndTime: start.Add(time.Hour)}},
		{"missing end", models.Event{Title: "t", StartTime: start}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(ctx, "1", tt.ev); !httperr.IsBusiness(err, "missing_required_field") {
				t.Fatalf("expected missing_required_field, got %v", err)
			}
		})
	}
}

func TestSaveEventDefaultsAndOwnership(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	uc := NewSaveEvent(repo, dispatcher)

	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	saved, err := uc.Execute(context.Background(), "2", models.Event{
		Title:       "Inspection",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		EventTypeID: "3",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if saved.Status != models.StatusScheduled {
		t.Fatalf("expected scheduled default, got %s", saved.Status)
	}
	if saved.CreatedBy != "2" {
		t.Fatalf("expected caller ownership, got %q", saved.CreatedBy)
	}
	if saved.ID == "" {
		t.Fatal("no id generated")
	}
}

// The edit form never validated this; an inverted range must keep saving.
func TestSaveEventAcceptsInvertedTimeRange(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	uc := NewSaveEvent(repo, dispatcher)

	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	_, err := uc.Execute(context.Background(), "1", models.Event{
		Title:     "Backwards",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("inverted range rejected: %v", err)
	}
}

func TestSaveEventOverridesStatusUnguarded(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	uc := NewSaveEvent(repo, dispatcher)
	ctx := context.Background()

	events, err := repo.Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	target := events[0]
	target.Status = models.StatusCompleted
	if _, err := uc.Execute(ctx, "1", target); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// completed -> scheduled is forbidden on the quick path but fine here
	target.Status = models.StatusScheduled
	if _, err := uc.Execute(ctx, "1", target); err != nil {
		t.Fatalf("manual status rollback rejected: %v", err)
	}

	target.Status = "archived"
	if _, err := uc.Execute(ctx, "1", target); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestQuickStatusGuardedTransitions(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	uc := NewQuickStatus(repo, dispatcher)
	ctx := context.Background()

	// seeded event 1 is scheduled
	ev, err := uc.Start(ctx, "1", "1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if ev.Status != models.StatusInProgress {
		t.Fatalf("expected in-progress, got %s", ev.Status)
	}

	// starting twice violates the guard
	if _, err := uc.Start(ctx, "1", "1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	ev, err = uc.Complete(ctx, "1", "1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ev.Status != models.StatusCompleted {
		t.Fatalf("expected completed, got %s", ev.Status)
	}

	if _, err := uc.Complete(ctx, "1", "1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	if _, err := uc.Start(ctx, "1", "no-such-event"); !httperr.IsBusiness(err, "event_not_found") {
		t.Fatalf("expected event_not_found, got %v", err)
	}
}

func TestListTasksResolvesTypesAndFilters(t *testing.T) {
	repo, dispatcher := newFixtures(t)
	_ = dispatcher
	uc := NewListTasks(repo)
	ctx := context.Background()

	all, err := uc.Execute(ctx, domain.TabAll)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 seeded tasks, got %d", len(all))
	}

	cleaning, err := uc.Execute(ctx, domain.TabCleaning)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(cleaning) != 1 || cleaning[0].Title != "Office Cleaning" {
		t.Fatalf("cleaning tab mismatch: %+v", cleaning)
	}
	if cleaning[0].TypeName != "Regular Cleaning" || cleaning[0].TypeCategory != "cleaning" {
		t.Fatalf("type not resolved: %+v", cleaning[0])
	}
	if len(cleaning[0].AssigneeNames) != 1 || cleaning[0].AssigneeNames[0] != "Staff User" {
		t.Fatalf("assignees not resolved: %v", cleaning[0].AssigneeNames)
	}

	maintenance, err := uc.Execute(ctx, domain.TabMaintenance)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(maintenance) != 1 || maintenance[0].Title != "HVAC Maintenance" {
		t.Fatalf("maintenance tab mismatch: %+v", maintenance)
	}
}

func TestListTasksExcludesOrphansFromCategoryTabs(t *testing.T) {
	repo, _ := newFixtures(t)
	uc := NewListTasks(repo)
	ctx := context.Background()

	// orphan the cleaning event by deleting its type
	if err := repo.DeleteEventType("1"); err != nil {
		t.Fatalf("DeleteEventType: %v", err)
	}

	cleaning, err := uc.Execute(ctx, domain.TabCleaning)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(cleaning) != 0 {
		t.Fatalf("orphaned task still in cleaning tab: %+v", cleaning)
	}

	all, err := uc.Execute(ctx, domain.TabAll)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("orphaned task missing from all tab: %d", len(all))
	}
	for _, task := range all {
		if task.Title == "Office Cleaning" && task.TypeName != "Unknown" {
			t.Fatalf("orphan did not resolve to Unknown: %+v", task)
		}
	}
}

func TestMonthViewBinsSeededEvents(t *testing.T) {
	repo, _ := newFixtures(t)
	uc := NewMonthView(repo, time.Sunday)
	ctx := context.Background()

	now := time.Now()
	grid, err := uc.Execute(ctx, now.Year(), int(now.Month()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// the "today 9:00" seeded event must land on today's cell
	found := false
	today := now.Format("2006-01-02")
	for _, week := range grid.Weeks {
		for _, cell := range week {
			for _, ev := range cell.Events {
				if ev.ID == "1" {
					found = true
					if cell.Date.Format("2006-01-02") != today {
						t.Fatalf("event 1 binned on %v, expected today", cell.Date)
					}
				}
			}
		}
	}
	if !found {
		t.Fatal("seeded event 1 missing from its month grid")
	}

	if _, err := uc.Execute(ctx, 2026, 13); !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}
