package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskflowhq/taskflow-api/internal/models"
)

// Record is one entry of the flat key space. Values are JSON blobs; this
// layer knows nothing about the shape of what it stores.
type Record struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

type Store struct {
	db *gorm.DB
}

// Open connects the local single-file database and migrates the key-value
// table plus the audit log. Callers treat any error here as fatal.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&Record{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying connection for collaborators that keep their
// own tables (audit log).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Has reports whether a key was ever written, regardless of what it holds.
func (s *Store) Has(key string) (bool, error) {
	var count int64
	if err := s.db.Model(&Record{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&Record{}).Error
}

// Read returns the stored value for key, or def when the key is absent.
// A value that no longer parses is reported as an error: the data layer has
// no way to repair it and letting it through would corrupt date arithmetic
// downstream.
func Read[T any](s *Store, key string, def T) (T, error) {
	var rec Record
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var out T
	if err := json.Unmarshal([]byte(rec.Value), &out); err != nil {
		return def, fmt.Errorf("storage: corrupt value for %q: %w", key, err)
	}
	return out, nil
}

// Write serializes value as JSON under key, creating or replacing the record.
func Write[T any](s *Store, key string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", key, err)
	}

	rec := Record{Key: key, Value: string(b), UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
