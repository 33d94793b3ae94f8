package dto

import "time"

// TaskDTO is the task-list projection of an event: the soft event-type
// reference is resolved into display fields and assignee ids into names.
type TaskDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`

	TypeName     string `json:"typeName"`
	TypeColor    string `json:"typeColor"`
	TypeCategory string `json:"typeCategory"`

	AssignedTo    []string `json:"assignedTo"`
	AssigneeNames []string `json:"assigneeNames"`
}
