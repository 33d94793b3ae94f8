package store

import (
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/storage"
)

func (s *Store) Users() ([]models.User, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	return storage.Read(s.storage, KeyUsers, []models.User{})
}

// SaveUser upserts a user. Empty id: generate one and append. Known id:
// replace in place. Unknown but non-empty id: append as-is, keeping the
// client-supplied id.
func (s *Store) SaveUser(u models.User) (models.User, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, err
	}

	if u.ID == "" {
		u.ID = s.NewID()
		users = append(users, u)
	} else {
		idx := -1
		for i := range users {
			if users[i].ID == u.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			users[idx] = u
		} else {
			users = append(users, u)
		}
	}

	if err := storage.Write(s.storage, KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) DeleteUser(id string) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return storage.Write(s.storage, KeyUsers, kept)
}

func (s *Store) UserByID(id string) (models.User, bool, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// UserByPhone is the login lookup: phone is the unique login key.
func (s *Store) UserByPhone(phone string) (models.User, bool, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Phone == phone {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}
