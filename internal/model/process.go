package model

import "github.com/shopspring/decimal"

// Process is an hourly-priced manufacturing operation. Origin records where
// the row came from ("Manual" or the spreadsheet import tag).
type Process struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Group        string          `gorm:"column:grupo"`
	Subgroup     string          `gorm:"column:subgrupo"`
	Name         string          `gorm:"column:nome;index"`
	PricePerHour decimal.Decimal `gorm:"column:preco_unitario_hora;type:decimal(12,2);not null;default:0"`
	Unit         string          `gorm:"column:unidade"`
	Origin       string          `gorm:"column:origem"`
}

func (Process) TableName() string { return "vertical_processes" }
