package auth

import (
	"context"
	"sync"
	"time"
)

// CodeStore holds pending verification codes keyed by phone number. The
// issue/check contract is identical regardless of the backing store.
type CodeStore interface {
	// Store replaces any pending code for phone with a fresh one that
	// expires after ttl.
	Store(ctx context.Context, phone, code string, ttl time.Duration) error

	// Check reports whether code matches the pending entry for phone.
	// A match consumes the entry (single use). An expired entry is purged
	// and reported as no match. A mismatch leaves the entry in place so
	// the user can retry until it expires.
	Check(ctx context.Context, phone, code string) (bool, error)
}

type codeEntry struct {
	code   string
	expiry time.Time
}

// MemoryCodeStore is the default in-process backend. Codes do not survive a
// restart, which matches the ephemeral channel this models.
type MemoryCodeStore struct {
	mu      sync.Mutex
	entries map[string]codeEntry
	now     func() time.Time
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{
		entries: make(map[string]codeEntry),
		now:     time.Now,
	}
}

func (m *MemoryCodeStore) Store(ctx context.Context, phone, code string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[phone] = codeEntry{code: code, expiry: m.now().Add(ttl)}
	return nil
}

func (m *MemoryCodeStore) Check(ctx context.Context, phone, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[phone]
	if !ok {
		return false, nil
	}

	if m.now().After(entry.expiry) {
		delete(m.entries, phone)
		return false, nil
	}

	if entry.code == code {
		delete(m.entries, phone)
		return true, nil
	}

	return false, nil
}
