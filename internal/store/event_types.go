package store

import (
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

func (s *Store) EventTypes() ([]models.EventType, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	return storage.Read(s.storage, KeyEventTypes, []models.EventType{})
}

func (s *Store) SaveEventType(et models.EventType) (models.EventType, error) {
	types, err := s.EventTypes()
	if err != nil {
		return models.EventType{}, err
	}

	if et.ID == "" {
		et.ID = s.NewID()
		types = append(types, et)
	} else {
		idx := -1
		for i := range types {
			if types[i].ID == et.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			types[idx] = et
		} else {
			types = append(types, et)
		}
	}

	if err := storage.Write(s.storage, KeyEventTypes, types); err != nil {
		return models.EventType{}, err
	}
	return et, nil
}

// DeleteEventType removes the type only. Events referencing it are left
// alone and resolve to the Unknown fallback from then on.
func (s *Store) DeleteEventType(id string) error {
	types, err := s.EventTypes()
	if err != nil {
		return err
	}

	kept := make([]models.EventType, 0, len(types))
	for _, et := range types {
		if et.ID != id {
			kept = append(kept, et)
		}
	}
	return storage.Write(s.storage, KeyEventTypes, kept)
}
