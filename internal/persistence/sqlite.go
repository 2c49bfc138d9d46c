package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mercora/storefront/pkg/config"
	"github.com/mercora/storefront/pkg/logger"
)

// snapshot is the single-table key/value mirror backing the sqlite store.
type snapshot struct {
	Slice     string    `gorm:"column:slice;primaryKey"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (snapshot) TableName() string { return "snapshots" }

// SQLiteStore mirrors state slices into a local sqlite file.
type SQLiteStore struct {
	conn *gorm.DB
}

// NewSQLiteStore opens (or creates) the snapshot database and migrates it.
func NewSQLiteStore(ctx context.Context, cfg config.CacheConfig, logg *logger.Logger) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("cache path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&snapshot{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot db: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "snapshot database ready")
	}
	return &SQLiteStore{conn: conn}, nil
}

// Save upserts the serialized value under the slice key.
func (s *SQLiteStore) Save(ctx context.Context, slice string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slice %s: %w", slice, err)
	}
	record := snapshot{Slice: slice, Payload: payload}
	if err := s.conn.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("write slice %s: %w", slice, err)
	}
	return nil
}

// Load reads and decodes the snapshot for the slice.
func (s *SQLiteStore) Load(ctx context.Context, slice string, dest any) error {
	var record snapshot
	if err := s.conn.WithContext(ctx).First(&record, "slice = ?", slice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("read slice %s: %w", slice, err)
	}
	if err := json.Unmarshal(record.Payload, dest); err != nil {
		return fmt.Errorf("decode slice %s: %w", slice, err)
	}
	return nil
}

// Ping verifies the underlying database handle.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
