package repository

import (
	"context"

	"precificacao/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogRepository is the data access contract for the flat reference tables
// (materials, processes, third-party items, admin costs). Services depend on
// this interface, not on the concrete GORM implementation, enabling clean
// unit testing via stubs.
type CatalogRepository interface {
	ListMaterials(ctx context.Context) ([]model.Material, error)
	ListProcesses(ctx context.Context) ([]model.Process, error)
	ListThirdParty(ctx context.Context) ([]model.ThirdPartyItem, error)
	ListAdminCosts(ctx context.Context) ([]model.AdminCost, error)

	// Lookups used inside engine transactions — callers pass the live tx.
	FindMaterialTx(tx *gorm.DB, id int64) (*model.Material, error)
	FindProcessTx(tx *gorm.DB, id int64) (*model.Process, error)
	FindThirdPartyTx(tx *gorm.DB, id int64) (*model.ThirdPartyItem, error)
	SumAdminCostsTx(tx *gorm.DB) (decimal.Decimal, error)

	// Name resolution for composition saves — first match by lowest id.
	FindMaterialByNameTx(tx *gorm.DB, name string) (*model.Material, error)
	FindProcessByNameTx(tx *gorm.DB, name string) (*model.Process, error)
	FindThirdPartyByNameTx(tx *gorm.DB, name string) (*model.ThirdPartyItem, error)

	CreateMaterialTx(tx *gorm.DB, m *model.Material) error
	CreateProcessTx(tx *gorm.DB, p *model.Process) error
	CreateThirdPartyTx(tx *gorm.DB, t *model.ThirdPartyItem) error

	// Import append — plain batch inserts outside any caller transaction.
	CreateProcesses(ctx context.Context, rows []model.Process) error
	CreateMaterials(ctx context.Context, rows []model.Material) error

	// Whole-table replace. Callers wrap these in one transaction so a failed
	// save can never leave a table empty.
	ReplaceMaterialsTx(tx *gorm.DB, rows []model.Material) error
	ReplaceProcessesTx(tx *gorm.DB, rows []model.Process) error
	ReplaceThirdPartyTx(tx *gorm.DB, rows []model.ThirdPartyItem) error
	ReplaceAdminCostsTx(tx *gorm.DB, rows []model.AdminCost) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) ListMaterials(ctx context.Context) ([]model.Material, error) {
	var rows []model.Material
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) ListProcesses(ctx context.Context) ([]model.Process, error) {
	var rows []model.Process
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) ListThirdParty(ctx context.Context) ([]model.ThirdPartyItem, error) {
	var rows []model.ThirdPartyItem
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) ListAdminCosts(ctx context.Context) ([]model.AdminCost, error) {
	var rows []model.AdminCost
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) FindMaterialTx(tx *gorm.DB, id int64) (*model.Material, error) {
	var m model.Material
	err := tx.First(&m, id).Error
	return &m, err
}

func (r *catalogRepo) FindProcessTx(tx *gorm.DB, id int64) (*model.Process, error) {
	var p model.Process
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *catalogRepo) FindThirdPartyTx(tx *gorm.DB, id int64) (*model.ThirdPartyItem, error) {
	var t model.ThirdPartyItem
	err := tx.First(&t, id).Error
	return &t, err
}

func (r *catalogRepo) SumAdminCostsTx(tx *gorm.DB) (decimal.Decimal, error) {
	// SUM over a decimal column comes back as text from SQLite; scan through
	// the decimal type to keep exact arithmetic.
	var total decimal.NullDecimal
	err := tx.Model(&model.AdminCost{}).Select("COALESCE(SUM(valor), 0)").Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *catalogRepo) FindMaterialByNameTx(tx *gorm.DB, name string) (*model.Material, error) {
	var m model.Material
	err := tx.Where("nome = ?", name).Order("id ASC").First(&m).Error
	return &m, err
}

func (r *catalogRepo) FindProcessByNameTx(tx *gorm.DB, name string) (*model.Process, error) {
	var p model.Process
	err := tx.Where("nome = ?", name).Order("id ASC").First(&p).Error
	return &p, err
}

func (r *catalogRepo) FindThirdPartyByNameTx(tx *gorm.DB, name string) (*model.ThirdPartyItem, error) {
	var t model.ThirdPartyItem
	err := tx.Where("nome = ?", name).Order("id ASC").First(&t).Error
	return &t, err
}

func (r *catalogRepo) CreateMaterialTx(tx *gorm.DB, m *model.Material) error {
	return tx.Create(m).Error
}

func (r *catalogRepo) CreateProcessTx(tx *gorm.DB, p *model.Process) error {
	return tx.Create(p).Error
}

func (r *catalogRepo) CreateThirdPartyTx(tx *gorm.DB, t *model.ThirdPartyItem) error {
	return tx.Create(t).Error
}

func (r *catalogRepo) CreateProcesses(ctx context.Context, rows []model.Process) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *catalogRepo) CreateMaterials(ctx context.Context, rows []model.Material) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *catalogRepo) ReplaceMaterialsTx(tx *gorm.DB, rows []model.Material) error {
	if err := tx.Where("1 = 1").Delete(&model.Material{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *catalogRepo) ReplaceProcessesTx(tx *gorm.DB, rows []model.Process) error {
	if err := tx.Where("1 = 1").Delete(&model.Process{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *catalogRepo) ReplaceThirdPartyTx(tx *gorm.DB, rows []model.ThirdPartyItem) error {
	if err := tx.Where("1 = 1").Delete(&model.ThirdPartyItem{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *catalogRepo) ReplaceAdminCostsTx(tx *gorm.DB, rows []model.AdminCost) error {
	if err := tx.Where("1 = 1").Delete(&model.AdminCost{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *catalogRepo) DB() *gorm.DB { return r.db }
