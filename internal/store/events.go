package store

import (
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

// eventRecord is the persisted form of an event. Timestamps go through the
// store as RFC3339 strings; every read path must reconstruct them into real
// time values before the event is handed out.
type eventRecord struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	EventTypeID string            `json:"eventTypeId"`
	Status      string            `json:"status"`
	CreatedBy   string            `json:"createdBy"`
	AssignedTo  []string          `json:"assignedTo"`
	Location    string            `json:"location,omitempty"`
	Recurrence  *recurrenceRecord `json:"recurrence,omitempty"`
}

type recurrenceRecord struct {
	Pattern  string `json:"pattern"`
	Interval int    `json:"interval"`
	EndDate  string `json:"endDate,omitempty"`
}

func encodeEvent(ev models.Event) eventRecord {
	rec := eventRecord{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   ev.StartTime.Format(time.RFC3339),
		EndTime:     ev.EndTime.Format(time.RFC3339),
		EventTypeID: ev.EventTypeID,
		Status:      string(ev.Status),
		CreatedBy:   ev.CreatedBy,
		AssignedTo:  ev.AssignedTo,
		Location:    ev.Location,
	}
	if ev.Recurrence != nil {
		rec.Recurrence = &recurrenceRecord{
			Pattern:  string(ev.Recurrence.Pattern),
			Interval: ev.Recurrence.Interval,
		}
		if ev.Recurrence.EndDate != nil {
			rec.Recurrence.EndDate = ev.Recurrence.EndDate.Format(time.RFC3339)
		}
	}
	return rec
}

func decodeEvent(rec eventRecord) (models.Event, error) {
	start, err := time.Parse(time.RFC3339, rec.StartTime)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s: bad startTime %q: %w", rec.ID, rec.StartTime, err)
	}
	end, err := time.Parse(time.RFC3339, rec.EndTime)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s: bad endTime %q: %w", rec.ID, rec.EndTime, err)
	}

	ev := models.Event{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		StartTime:   start,
		EndTime:     end,
		EventTypeID: rec.EventTypeID,
		Status:      models.EventStatus(rec.Status),
		CreatedBy:   rec.CreatedBy,
		AssignedTo:  rec.AssignedTo,
		Location:    rec.Location,
	}

	if rec.Recurrence != nil {
		r := &models.Recurrence{
			Pattern:  models.RecurrencePattern(rec.Recurrence.Pattern),
			Interval: rec.Recurrence.Interval,
		}
		if rec.Recurrence.EndDate != "" {
			endDate, err := time.Parse(time.RFC3339, rec.Recurrence.EndDate)
			if err != nil {
				return models.Event{}, fmt.Errorf("event %s: bad recurrence endDate %q: %w", rec.ID, rec.Recurrence.EndDate, err)
			}
			r.EndDate = &endDate
		}
		ev.Recurrence = r
	}

	return ev, nil
}

// Events returns all events with their timestamps reconstructed.
func (s *Store) Events() ([]models.Event, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	recs, err := storage.Read(s.storage, KeyEvents, []eventRecord{})
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(recs))
	for _, rec := range recs {
		ev, err := decodeEvent(rec)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// SaveEvent upserts an event with the same three-way branch as the other
// collections: generate-and-append, replace-in-place, or append with the
// client-supplied id.
func (s *Store) SaveEvent(ev models.Event) (models.Event, error) {
	events, err := s.Events()
	if err != nil {
		return models.Event{}, err
	}

	if ev.ID == "" {
		ev.ID = s.NewID()
		events = append(events, ev)
	} else {
		idx := -1
		for i := range events {
			if events[i].ID == ev.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			events[idx] = ev
		} else {
			events = append(events, ev)
		}
	}

	return ev, s.writeEvents(events)
}

func (s *Store) DeleteEvent(id string) error {
	events, err := s.Events()
	if err != nil {
		return err
	}

	kept := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	return s.writeEvents(kept)
}

func (s *Store) EventByID(id string) (models.Event, bool, error) {
	events, err := s.Events()
	if err != nil {
		return models.Event{}, false, err
	}
	for _, ev := range events {
		if ev.ID == id {
			return ev, true, nil
		}
	}
	return models.Event{}, false, nil
}

func (s *Store) writeEvents(events []models.Event) error {
	recs := make([]eventRecord, 0, len(events))
	for _, ev := range events {
		recs = append(recs, encodeEvent(ev))
	}
	return storage.Write(s.storage, KeyEvents, recs)
}
