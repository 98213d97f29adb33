package repository

import (
	"context"

	"precificacao/internal/model"

	"gorm.io/gorm"
)

// QuoteLinkRepository defines data access for the append-only quote audit rows.
type QuoteLinkRepository interface {
	Create(ctx context.Context, l *model.QuoteLink) error
	Delete(ctx context.Context, productID, clientID int64) error
	ListByProduct(ctx context.Context, productID int64) ([]model.QuoteLink, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.QuoteLink, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type quoteLinkRepo struct{ db *gorm.DB }

func NewQuoteLinkRepository(db *gorm.DB) QuoteLinkRepository { return &quoteLinkRepo{db: db} }

func (r *quoteLinkRepo) Create(ctx context.Context, l *model.QuoteLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *quoteLinkRepo) Delete(ctx context.Context, productID, clientID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND client_id = ?", productID, clientID).
		Delete(&model.QuoteLink{}).Error
}

func (r *quoteLinkRepo) ListByProduct(ctx context.Context, productID int64) ([]model.QuoteLink, error) {
	var rows []model.QuoteLink
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *quoteLinkRepo) ListByClient(ctx context.Context, clientID int64) ([]model.QuoteLink, error) {
	var rows []model.QuoteLink
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *quoteLinkRepo) DB() *gorm.DB { return r.db }
