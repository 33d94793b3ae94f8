package models

import "time"

type EventStatus string

const (
	StatusScheduled  EventStatus = "scheduled"
	StatusInProgress EventStatus = "in-progress"
	StatusCompleted  EventStatus = "completed"
	StatusCancelled  EventStatus = "cancelled"
)

type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// Recurrence is stored and round-tripped with the event but no occurrence
// expansion is performed anywhere; only the literal start time is rendered.
type Recurrence struct {
	Pattern  RecurrencePattern `json:"pattern"`
	Interval int               `json:"interval"`
	EndDate  *time.Time        `json:"endDate,omitempty"`
}

// Event is a scheduled activity. EventTypeID is a soft reference: the type
// may be deleted underneath it, in which case reads resolve to
// UnknownEventType.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	EventTypeID string      `json:"eventTypeId"`
	Status      EventStatus `json:"status"`
	CreatedBy   string      `json:"createdBy"`
	AssignedTo  []string    `json:"assignedTo"`
	Location    string      `json:"location,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
}
