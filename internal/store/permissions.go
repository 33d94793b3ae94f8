package store

import (
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

// Permissions are seeded and listed only; nothing in the application
// enforces them.
func (s *Store) Permissions() ([]models.Permission, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	return storage.Read(s.storage, KeyPermissions, []models.Permission{})
}
