package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a unit-priced catalog row (the "vertical" reference table).
// NCM is the tax-classification code carried into tax resolution.
type Material struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Group     string          `gorm:"column:grupo"`
	Subgroup  string          `gorm:"column:subgrupo"`
	Name      string          `gorm:"column:nome;index"`
	NCM       string          `gorm:"column:ncm"`
	Unit      string          `gorm:"column:unidade"`
	UnitPrice decimal.Decimal `gorm:"column:preco_unitario;type:decimal(12,2);not null;default:0"`
	Supplier  string          `gorm:"column:fornecedor"`
	UpdatedAt time.Time       `gorm:"column:data_atualizacao"`
}

func (Material) TableName() string { return "vertical_materials" }
