package store

import (
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

// CurrentUser reads the durable session slot. The second return is false
// when no session is persisted.
func (s *Store) CurrentUser() (models.User, bool, error) {
	ok, err := s.storage.Has(KeyCurrentUser)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	u, err := storage.Read(s.storage, KeyCurrentUser, models.User{})
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

// SetCurrentUser persists the full user record into the session slot.
func (s *Store) SetCurrentUser(u models.User) error {
	return storage.Write(s.storage, KeyCurrentUser, u)
}

func (s *Store) ClearCurrentUser() error {
	return s.storage.Delete(KeyCurrentUser)
}
