package repository

import (
	"precificacao/internal/model"

	"gorm.io/gorm"
)

// CompositionRepository is the data access contract for the four usage edge
// tables. Every method takes the live tx: composition reads feed the rollup
// engine (which needs a consistent snapshot) and composition writes are part
// of clear-then-rewrite transactions.
type CompositionRepository interface {
	MaterialUsageTx(tx *gorm.DB, productID int64) ([]model.MaterialUsage, error)
	ProcessUsageTx(tx *gorm.DB, productID int64) ([]model.ProcessUsage, error)
	ThirdUsageTx(tx *gorm.DB, productID int64) ([]model.ThirdUsage, error)
	ComponentsTx(tx *gorm.DB, productID int64) ([]model.ComponentUsage, error)

	AddMaterialUsageTx(tx *gorm.DB, u *model.MaterialUsage) error
	AddProcessUsageTx(tx *gorm.DB, u *model.ProcessUsage) error
	AddThirdUsageTx(tx *gorm.DB, u *model.ThirdUsage) error
	AddComponentTx(tx *gorm.DB, u *model.ComponentUsage) error

	// ClearAllTx deletes every usage edge the product owns, across all four
	// edge types. First step of a replace-composition transaction.
	ClearAllTx(tx *gorm.DB, productID int64) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type compositionRepo struct{ db *gorm.DB }

func NewCompositionRepository(db *gorm.DB) CompositionRepository { return &compositionRepo{db: db} }

func (r *compositionRepo) MaterialUsageTx(tx *gorm.DB, productID int64) ([]model.MaterialUsage, error) {
	var rows []model.MaterialUsage
	err := tx.Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *compositionRepo) ProcessUsageTx(tx *gorm.DB, productID int64) ([]model.ProcessUsage, error) {
	var rows []model.ProcessUsage
	err := tx.Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *compositionRepo) ThirdUsageTx(tx *gorm.DB, productID int64) ([]model.ThirdUsage, error) {
	var rows []model.ThirdUsage
	err := tx.Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *compositionRepo) ComponentsTx(tx *gorm.DB, productID int64) ([]model.ComponentUsage, error) {
	var rows []model.ComponentUsage
	err := tx.Where("parent_product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *compositionRepo) AddMaterialUsageTx(tx *gorm.DB, u *model.MaterialUsage) error {
	return tx.Create(u).Error
}

func (r *compositionRepo) AddProcessUsageTx(tx *gorm.DB, u *model.ProcessUsage) error {
	return tx.Create(u).Error
}

func (r *compositionRepo) AddThirdUsageTx(tx *gorm.DB, u *model.ThirdUsage) error {
	return tx.Create(u).Error
}

func (r *compositionRepo) AddComponentTx(tx *gorm.DB, u *model.ComponentUsage) error {
	return tx.Create(u).Error
}

func (r *compositionRepo) ClearAllTx(tx *gorm.DB, productID int64) error {
	steps := []error{
		tx.Where("product_id = ?", productID).Delete(&model.MaterialUsage{}).Error,
		tx.Where("product_id = ?", productID).Delete(&model.ProcessUsage{}).Error,
		tx.Where("product_id = ?", productID).Delete(&model.ThirdUsage{}).Error,
		tx.Where("parent_product_id = ?", productID).Delete(&model.ComponentUsage{}).Error,
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *compositionRepo) DB() *gorm.DB { return r.db }
