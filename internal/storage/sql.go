package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted value.
type Entry struct {
	Namespace string    `gorm:"column:namespace;primaryKey;size:64"`
	Name      string    `gorm:"column:name;primaryKey;size:64"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (Entry) TableName() string { return "kv_entries" }

// SQLStore persists entries through gorm (sqlite locally, postgres in prod).
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND name = ?", namespace, key).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

func (s *SQLStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	e := Entry{
		Namespace: namespace,
		Name:      key,
		Value:     value,
		UpdatedAt: s.now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

func (s *SQLStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("namespace = ? AND name IN ?", namespace, keys).
		Delete(&Entry{}).Error
}

// Touch bumps updated_at on every entry of the namespace.
func (s *SQLStore) Touch(ctx context.Context, namespace string) error {
	return s.db.WithContext(ctx).
		Model(&Entry{}).
		Where("namespace = ?", namespace).
		Update("updated_at", s.now().UTC()).Error
}

// EvictIdle removes every namespace whose newest entry is older than cutoff.
func (s *SQLStore) EvictIdle(ctx context.Context, cutoff time.Time) (int, error) {
	var stale []string
	err := s.db.WithContext(ctx).
		Model(&Entry{}).
		Group("namespace").
		Having("MAX(updated_at) < ?", cutoff.UTC()).
		Pluck("namespace", &stale).Error
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Where("namespace IN ?", stale).Delete(&Entry{}).Error; err != nil {
		return 0, err
	}
	return len(stale), nil
}
