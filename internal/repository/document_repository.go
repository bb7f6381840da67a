package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/dealer-docs/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.GeneratedDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// ListBetween returns the documents created in [from, to), oldest first.
func (r *DocumentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.GeneratedDocument, error) {
	var docs []model.GeneratedDocument
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
