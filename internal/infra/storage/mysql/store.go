// Package mysql implements archiver.ProgressStorage on MySQL-compatible
// databases (including PlanetScale) through gorm.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blockarchive/internal/archiver"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidDSN is returned by Open when the data source name cannot be parsed.
var ErrInvalidDSN = errors.New("invalid mysql dsn")

// archivedBlock is one archived height of a stream.
type archivedBlock struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Network   string    `gorm:"size:64;not null;uniqueIndex:uidx_archived_block,priority:1"`
	Stream    string    `gorm:"size:16;not null;uniqueIndex:uidx_archived_block,priority:2"`
	BlockID   uint64    `gorm:"not null;uniqueIndex:uidx_archived_block,priority:3"`
	TxID      string    `gorm:"column:tx_id;size:66;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (archivedBlock) TableName() string {
	return "archived_blocks"
}

type store struct {
	db      *gorm.DB
	network string
}

// Compile-time assertion to ensure store implements the ProgressStorage interface.
var _ archiver.ProgressStorage = (*store)(nil)

// NewStore returns a ProgressStorage scoped to network on top of an open gorm connection.
func NewStore(db *gorm.DB, network string) *store {
	return &store{db: db, network: network}
}

// Open connects to the database named by dsn and migrates the archive table.
// dsn uses the go-sql-driver format (user:pass@tcp(host:3306)/db?tls=true).
func Open(ctx context.Context, dsn, network string) (*store, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}
	cfg.ParseTime = true

	db, err := gorm.Open(mysql.Open(cfg.FormatDSN()), &gorm.Config{
		Logger: newLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(&archivedBlock{}); err != nil {
		return nil, fmt.Errorf("migrate archived_blocks: %w", err)
	}

	return NewStore(db, network), nil
}

// Close releases the underlying connection pool.
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (s *store) stream(ctx context.Context, stream archiver.StreamKind) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&archivedBlock{}).
		Where("network = ? AND stream = ?", s.network, string(stream))
}

func (s *store) edge(ctx context.Context, stream archiver.StreamKind, order string) (uint64, error) {
	var row archivedBlock

	err := s.stream(ctx, stream).Select("block_id").Order(order).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = archiver.ErrNoProgressFound
		}

		return 0, err
	}

	return row.BlockID, nil
}

// LatestArchived returns the highest archived height of stream.
func (s *store) LatestArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return s.edge(ctx, stream, "block_id DESC")
}

// FirstArchived returns the lowest archived height of stream.
func (s *store) FirstArchived(ctx context.Context, stream archiver.StreamKind) (uint64, error) {
	return s.edge(ctx, stream, "block_id ASC")
}

// RecordArchived upserts the transaction id of height.
func (s *store) RecordArchived(ctx context.Context, stream archiver.StreamKind, height uint64, txid string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "network"}, {Name: "stream"}, {Name: "block_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tx_id", "updated_at"}),
	}).Create(&archivedBlock{
		Network: s.network,
		Stream:  string(stream),
		BlockID: height,
		TxID:    txid,
	}).Error
}

// TotalCount returns the number of archived heights across every stream of the network.
func (s *store) TotalCount(ctx context.Context) (uint64, error) {
	var total int64

	err := s.db.WithContext(ctx).
		Model(&archivedBlock{}).
		Where("network = ?", s.network).
		Count(&total).Error
	if err != nil {
		return 0, err
	}

	return uint64(total), nil
}

// TxID returns the transaction id recorded for height.
func (s *store) TxID(ctx context.Context, stream archiver.StreamKind, height uint64) (string, error) {
	var row archivedBlock

	err := s.stream(ctx, stream).Select("tx_id").Where("block_id = ?", height).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = archiver.ErrRecordNotFound
		}

		return "", err
	}

	return row.TxID, nil
}
