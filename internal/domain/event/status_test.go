package event

import (
	"testing"

	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/models"
)

func TestStartGuard(t *testing.T) {
	tests := []struct {
		current models.EventStatus
		wantErr bool
	}{
		{models.StatusScheduled, false},
		{models.StatusInProgress, true},
		{models.StatusCompleted, true},
		{models.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			ev := models.Event{Status: tt.current}
			err := Start(&ev)
			if tt.wantErr {
				if !httperr.IsBusiness(err, "invalid_state") {
					t.Fatalf("expected invalid_state, got %v", err)
				}
				if ev.Status != tt.current {
					t.Fatalf("guard mutated status to %s", ev.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			if ev.Status != models.StatusInProgress {
				t.Fatalf("expected in-progress, got %s", ev.Status)
			}
		})
	}
}

func TestCompleteGuardAllowsAnyNonCompleted(t *testing.T) {
	tests := []struct {
		current models.EventStatus
		wantErr bool
	}{
		{models.StatusScheduled, false},
		{models.StatusInProgress, false},
		{models.StatusCancelled, false},
		{models.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			ev := models.Event{Status: tt.current}
			err := Complete(&ev)
			if tt.wantErr {
				if !httperr.IsBusiness(err, "invalid_state") {
					t.Fatalf("expected invalid_state, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if ev.Status != models.StatusCompleted {
				t.Fatalf("expected completed, got %s", ev.Status)
			}
		})
	}
}

// The manual edit path ignores the transition graph entirely.
func TestOverrideBypassesGuards(t *testing.T) {
	ev := models.Event{Status: models.StatusCompleted}
	if err := Override(&ev, models.StatusScheduled); err != nil {
		t.Fatalf("Override: %v", err)
	}
	if ev.Status != models.StatusScheduled {
		t.Fatalf("expected scheduled, got %s", ev.Status)
	}

	if err := Override(&ev, "archived"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
