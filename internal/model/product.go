package model

import "github.com/shopspring/decimal"

// Product is a finished or intermediate good. DestinationUF and OriginUF are
// Brazilian state codes; a mismatch triggers the interstate ICMS override.
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Code          string          `gorm:"column:codigo;index"`
	Name          string          `gorm:"column:nome;index"`
	Quantity      decimal.Decimal `gorm:"column:quantidade;type:decimal(12,2);not null;default:1"`
	DestinationUF string          `gorm:"column:destino_uf"`
	NCM           string          `gorm:"column:ncm"`
	OriginUF      string          `gorm:"column:local_fabricacao_uf"`
}

func (Product) TableName() string { return "products" }
