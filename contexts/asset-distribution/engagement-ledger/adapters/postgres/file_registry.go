package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"brandbridge/contexts/asset-distribution/engagement-ledger/domain/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// FileRegistry reads the brand asset catalog. It never writes.
type FileRegistry struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewFileRegistry(db *gorm.DB, logger *slog.Logger) *FileRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileRegistry{
		db:     db,
		logger: logger,
	}
}

// GetFile resolves one file. Soft-deleted rows are excluded by gorm and come
// back as not found. A catalog without its table reads as empty.
func (r *FileRegistry) GetFile(ctx context.Context, fileID string) (entities.FileMetadata, bool, error) {
	var row assetFileModel
	err := r.db.WithContext(ctx).
		Where("file_id = ?", strings.TrimSpace(fileID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.FileMetadata{}, false, nil
		}
		if isUndefinedTable(err) {
			r.logger.Warn("asset catalog table missing",
				"event", "engagement_ledger_catalog_missing",
				"module", "asset-distribution/engagement-ledger",
				"layer", "adapter",
				"table", assetFileModel{}.TableName(),
			)
			return entities.FileMetadata{}, false, nil
		}
		return entities.FileMetadata{}, false, fmt.Errorf("get file %s: %w", fileID, err)
	}
	return row.toEntity(), true, nil
}

type assetFileModel struct {
	FileID    string         `gorm:"column:file_id;primaryKey"`
	BrandID   string         `gorm:"column:brand_id"`
	Name      string         `gorm:"column:name"`
	FileType  string         `gorm:"column:file_type"`
	SizeBytes int64          `gorm:"column:size_bytes"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (assetFileModel) TableName() string {
	return "brand_asset_files"
}

func (m assetFileModel) toEntity() entities.FileMetadata {
	return entities.FileMetadata{
		FileID:    m.FileID,
		BrandID:   m.BrandID,
		Name:      m.Name,
		Type:      m.FileType,
		SizeBytes: m.SizeBytes,
	}
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
