package store

import (
	"time"

	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

// ensureSeeded writes the default data set exactly once. The gate is "the
// users key was never written", NOT emptiness: a tenant that deletes every
// record keeps an empty collection and is never reseeded.
func (s *Store) ensureSeeded() error {
	seeded, err := s.storage.Has(KeyUsers)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	if err := storage.Write(s.storage, KeyUsers, defaultUsers()); err != nil {
		return err
	}
	if err := storage.Write(s.storage, KeyPermissions, defaultPermissions()); err != nil {
		return err
	}
	if err := storage.Write(s.storage, KeyEventTypes, defaultEventTypes()); err != nil {
		return err
	}

	recs := make([]eventRecord, 0, 3)
	for _, ev := range sampleEvents(s.Now()) {
		recs = append(recs, encodeEvent(ev))
	}
	return storage.Write(s.storage, KeyEvents, recs)
}

func defaultUsers() []models.User {
	return []models.User{
		{
			ID:     "1",
			Name:   "Admin User",
			Phone:  "+1234567890",
			Role:   models.RoleAdmin,
			Avatar: "https://api.dicebear.com/6.x/avataaars/svg?seed=admin",
		},
		{
			ID:     "2",
			Name:   "Manager User",
			Phone:  "+1987654321",
			Role:   models.RoleManager,
			Avatar: "https://api.dicebear.com/6.x/avataaars/svg?seed=manager",
		},
		{
			ID:     "3",
			Name:   "Staff User",
			Phone:  "+1555123456",
			Role:   models.RoleStaff,
			Avatar: "https://api.dicebear.com/6.x/avataaars/svg?seed=staff",
		},
	}
}

func defaultPermissions() []models.Permission {
	return []models.Permission{
		{
			ID:          "1",
			Name:        "Calendar",
			Description: "Access to calendar features",
			CanCreate:   true,
			CanRead:     true,
			CanUpdate:   true,
			CanDelete:   true,
		},
		{
			ID:          "2",
			Name:        "Tasks",
			Description: "Access to cleaning and maintenance tasks",
			CanRead:     true,
		},
		{
			ID:          "3",
			Name:        "Users",
			Description: "Access to user management",
			CanRead:     true,
		},
	}
}

func defaultEventTypes() []models.EventType {
	return []models.EventType{
		{ID: "1", Name: "Regular Cleaning", Category: models.CategoryCleaning, Color: "#22c55e"},
		{ID: "2", Name: "Deep Cleaning", Category: models.CategoryCleaning, Color: "#3b82f6"},
		{ID: "3", Name: "Routine Maintenance", Category: models.CategoryMaintenance, Color: "#f59e0b"},
		{ID: "4", Name: "Emergency Repair", Category: models.CategoryMaintenance, Color: "#ef4444"},
		{ID: "5", Name: "Team Meeting", Category: models.CategoryMeeting, Color: "#8b5cf6"},
	}
}

func sampleEvents(now time.Time) []models.Event {
	at := func(t time.Time, hour int) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	}
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	return []models.Event{
		{
			ID:          "1",
			Title:       "Office Cleaning",
			Description: "Regular weekly cleaning of the main office area",
			StartTime:   at(now, 9),
			EndTime:     at(now, 11),
			EventTypeID: "1",
			Status:      models.StatusScheduled,
			CreatedBy:   "1",
			AssignedTo:  []string{"3"},
			Location:    "Main Office",
			Recurrence:  &models.Recurrence{Pattern: models.RecurrenceWeekly, Interval: 1},
		},
		{
			ID:          "2",
			Title:       "HVAC Maintenance",
			Description: "Regular check of the HVAC system",
			StartTime:   at(tomorrow, 14),
			EndTime:     at(tomorrow, 16),
			EventTypeID: "3",
			Status:      models.StatusScheduled,
			CreatedBy:   "1",
			AssignedTo:  []string{"2", "3"},
			Location:    "Mechanical Room",
		},
		{
			ID:          "3",
			Title:       "Team Status Update",
			Description: "Weekly team meeting to discuss ongoing tasks",
			StartTime:   at(nextWeek, 10),
			EndTime:     at(nextWeek, 11),
			EventTypeID: "5",
			Status:      models.StatusScheduled,
			CreatedBy:   "1",
			AssignedTo:  []string{"1", "2", "3"},
			Location:    "Conference Room",
			Recurrence:  &models.Recurrence{Pattern: models.RecurrenceWeekly, Interval: 1},
		},
	}
}
