package models

type EventCategory string

const (
	CategoryCleaning    EventCategory = "cleaning"
	CategoryMaintenance EventCategory = "maintenance"
	CategoryMeeting     EventCategory = "meeting"
	CategoryGeneral     EventCategory = "general"
)

type EventType struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category EventCategory `json:"category"`
	Color    string        `json:"color"`
}

// UnknownEventType is the fallback for events whose type was deleted. Its
// category is deliberately empty so orphaned events match no category tab.
var UnknownEventType = EventType{
	Name:  "Unknown",
	Color: "#888",
}
