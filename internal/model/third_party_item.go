package model

import "github.com/shopspring/decimal"

// ThirdPartyItem is a per-unit outsourced service (heat treatment, plating…).
type ThirdPartyItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"column:nome;index"`
	UnitPrice  decimal.Decimal `gorm:"column:preco_unitario;type:decimal(12,2);not null;default:0"`
	DefaultQty decimal.Decimal `gorm:"column:quantidade_padrao;type:decimal(12,2);not null;default:1"`
	Supplier   string          `gorm:"column:fornecedor"`
	Unit       string          `gorm:"column:unidade"`
}

func (ThirdPartyItem) TableName() string { return "third_party_items" }
