package event

import "github.com/taskflowhq/taskflow-api/internal/models"

type Tab string

const (
	TabAll         Tab = "all"
	TabCleaning    Tab = "cleaning"
	TabMaintenance Tab = "maintenance"
)

// ResolveType looks up an event's type, falling back to the explicit
// Unknown type when the reference dangles. Never returns a nil-ish type.
func ResolveType(ev models.Event, types []models.EventType) models.EventType {
	for _, et := range types {
		if et.ID == ev.EventTypeID {
			return et
		}
	}
	return models.UnknownEventType
}

// FilterByCategory keeps events whose resolved type matches the tab's
// category. "all" passes everything through; orphaned events carry the
// Unknown type's empty category and match no other tab.
func FilterByCategory(events []models.Event, types []models.EventType, tab Tab) []models.Event {
	if tab == TabAll || tab == "" {
		return events
	}

	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		et := ResolveType(ev, types)
		if string(et.Category) == string(tab) {
			out = append(out, ev)
		}
	}
	return out
}
