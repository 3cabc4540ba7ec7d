package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryModel is the GORM persistence model for the kv_entries table.
type EntryModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"type:bytea;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

// TableName specifies the table name for GORM.
func (EntryModel) TableName() string {
	return "kv_entries"
}

// PostgresStore is a Store backed by a single PostgreSQL table.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a Store over db. Call Migrate before first use.
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates or updates the kv_entries table.
func (s *PostgresStore) Migrate() error {
	return s.db.AutoMigrate(&EntryModel{})
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	model := EntryModel{Key: key, Value: value, CreatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&model).Error
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var model EntryModel
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return model.Value, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&EntryModel{}).Error
}

func (s *PostgresStore) List(ctx context.Context, prefix string) ([]Entry, error) {
	var models []EntryModel
	if err := s.db.WithContext(ctx).
		Where(`key LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Order("key COLLATE \"C\" ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}

	entries := make([]Entry, len(models))
	for i, m := range models {
		entries[i] = Entry{Key: m.Key, Value: m.Value}
	}
	return entries, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
