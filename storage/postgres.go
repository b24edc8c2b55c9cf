package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one persisted key with its JSON-encoded value.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// PostgresStore persists the key space in a single Postgres table through
// GORM. Sets are upserts keyed on the primary key, so every write is
// last-write-wins like the other backends.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := p.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (p *PostgresStore) Remove(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Delete(&KVEntry{}, "key = ?", key).Error
}

func (p *PostgresStore) Clear(ctx context.Context) error {
	return p.db.WithContext(ctx).Where("1 = 1").Delete(&KVEntry{}).Error
}
