package repository

import (
	"context"

	"precificacao/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error

	// ListByClient returns products linked to a client via quote links.
	ListByClient(ctx context.Context, clientID int64) ([]model.Product, error)

	// Used inside transactions — callers must pass the tx instance.
	ListTx(tx *gorm.DB) ([]model.Product, error)
	FindByIDTx(tx *gorm.DB, id int64) (*model.Product, error)
	CreateTx(tx *gorm.DB, p *model.Product) error
	UpdateTx(tx *gorm.DB, p *model.Product) error

	// DeleteCascadeTx removes the product together with every usage edge and
	// quote link that references it. Must run inside the caller's tx so the
	// removal is all-or-nothing.
	DeleteCascadeTx(tx *gorm.DB, id int64) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) ListByClient(ctx context.Context, clientID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN product_clients pc ON pc.product_id = products.id").
		Where("pc.client_id = ?", clientID).
		Distinct("products.*").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ListTx(tx *gorm.DB) ([]model.Product, error) {
	var products []model.Product
	err := tx.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Product, error) {
	var p model.Product
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) UpdateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Save(p).Error
}

func (r *productRepo) DeleteCascadeTx(tx *gorm.DB, id int64) error {
	steps := []error{
		tx.Where("product_id = ?", id).Delete(&model.MaterialUsage{}).Error,
		tx.Where("product_id = ?", id).Delete(&model.ProcessUsage{}).Error,
		tx.Where("product_id = ?", id).Delete(&model.ThirdUsage{}).Error,
		tx.Where("parent_product_id = ? OR component_product_id = ?", id, id).Delete(&model.ComponentUsage{}).Error,
		tx.Where("product_id = ?", id).Delete(&model.QuoteLink{}).Error,
		tx.Delete(&model.Product{}, id).Error,
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *productRepo) DB() *gorm.DB { return r.db }
