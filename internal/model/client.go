package model

import "github.com/shopspring/decimal"

// Client carries the default tax rates used when no NCM override applies.
// Rates are fractions (0.0165 = 1.65%), kept at 4-decimal precision.
type Client struct {
	ID     int64           `gorm:"primaryKey;autoIncrement"`
	Name   string          `gorm:"column:nome;index"`
	Plant  string          `gorm:"column:planta"`
	UF     string          `gorm:"column:uf"`
	City   string          `gorm:"column:cidade"`
	Regime string          `gorm:"column:regime"`
	PIS    decimal.Decimal `gorm:"column:pis;type:decimal(8,4);not null;default:0"`
	COFINS decimal.Decimal `gorm:"column:cofins;type:decimal(8,4);not null;default:0"`
	ICMS   decimal.Decimal `gorm:"column:icms;type:decimal(8,4);not null;default:0"`
	Factor decimal.Decimal `gorm:"column:fator;type:decimal(8,4);not null;default:1"`
}

func (Client) TableName() string { return "clients" }
