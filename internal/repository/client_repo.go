package repository

import (
	"context"

	"precificacao/internal/model"

	"gorm.io/gorm"
)

// ClientRepository defines data access for clients and NCM tax overrides.
type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, id int64) (*model.Client, error)
	FindByIDTx(tx *gorm.DB, id int64) (*model.Client, error)
	ReplaceAllTx(tx *gorm.DB, rows []model.Client) error

	ListNcmTaxes(ctx context.Context) ([]model.NcmTax, error)
	// FindNcmTaxTx returns the override row for an NCM code, first match by
	// lowest id. gorm.ErrRecordNotFound means no override exists.
	FindNcmTaxTx(tx *gorm.DB, ncm string) (*model.NcmTax, error)
	ReplaceNcmTaxesTx(tx *gorm.DB, rows []model.NcmTax) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var rows []model.Client
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *clientRepo) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clientRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Client, error) {
	var c model.Client
	err := tx.First(&c, id).Error
	return &c, err
}

func (r *clientRepo) ReplaceAllTx(tx *gorm.DB, rows []model.Client) error {
	if err := tx.Where("1 = 1").Delete(&model.Client{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *clientRepo) ListNcmTaxes(ctx context.Context) ([]model.NcmTax, error) {
	var rows []model.NcmTax
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *clientRepo) FindNcmTaxTx(tx *gorm.DB, ncm string) (*model.NcmTax, error) {
	var n model.NcmTax
	err := tx.Where("ncm = ?", ncm).Order("id ASC").First(&n).Error
	return &n, err
}

func (r *clientRepo) ReplaceNcmTaxesTx(tx *gorm.DB, rows []model.NcmTax) error {
	if err := tx.Where("1 = 1").Delete(&model.NcmTax{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *clientRepo) DB() *gorm.DB { return r.db }
