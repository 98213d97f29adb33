package model

import "github.com/shopspring/decimal"

// AdminCost is a flat overhead row. The sum of this table is added once to a
// top-level rollup, unless percentage inputs override it at pricing time.
type AdminCost struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"column:nome"`
	Value decimal.Decimal `gorm:"column:valor;type:decimal(12,2);not null;default:0"`
}

func (AdminCost) TableName() string { return "admin_costs" }
