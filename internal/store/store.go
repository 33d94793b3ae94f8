package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow-api/internal/storage"
)

// Persisted key space. Flat namespace, JSON values.
const (
	KeyUsers       = "users"
	KeyPermissions = "permissions"
	KeyEventTypes  = "event-types"
	KeyEvents      = "events"
	KeyCurrentUser = "current-user"
)

// Store layers typed CRUD for the domain collections on top of the generic
// key-value adapter. NewID and Now are injectable for deterministic tests.
type Store struct {
	storage *storage.Store

	NewID func() string
	Now   func() time.Time
}

func New(st *storage.Store) *Store {
	return &Store{
		storage: st,
		NewID:   newID,
		Now:     time.Now,
	}
}

// newID yields a short unique token. Callers only rely on uniqueness and
// non-emptiness, not on the format.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
