package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLink is an append-only audit record of a saved quote: the margin and
// final price at the moment the product was linked to the client.
type QuoteLink struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ProductID    int64           `gorm:"column:product_id;index;not null"`
	ClientID     int64           `gorm:"column:client_id;index;not null"`
	MarginPct    decimal.Decimal `gorm:"column:margem;type:decimal(8,2);not null;default:0"`
	FinalPrice   decimal.Decimal `gorm:"column:preco_final;type:decimal(12,2);not null;default:0"`
	ActingUserID int64           `gorm:"column:acting_user_id"`
	CreatedAt    time.Time
}

func (QuoteLink) TableName() string { return "product_clients" }
