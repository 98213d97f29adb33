package model

import "github.com/shopspring/decimal"

// NcmTax overrides a client's default rates wholesale for products whose
// tax-classification code matches NCM. All three rates are replaced together,
// never merged field by field.
type NcmTax struct {
	ID     int64           `gorm:"primaryKey;autoIncrement"`
	NCM    string          `gorm:"column:ncm;index"`
	PIS    decimal.Decimal `gorm:"column:pis;type:decimal(8,4);not null;default:0"`
	COFINS decimal.Decimal `gorm:"column:cofins;type:decimal(8,4);not null;default:0"`
	ICMS   decimal.Decimal `gorm:"column:icms;type:decimal(8,4);not null;default:0"`
}

func (NcmTax) TableName() string { return "ncm_taxes" }
