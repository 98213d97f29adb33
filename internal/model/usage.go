package model

import "github.com/shopspring/decimal"

// Composition edges. All references are plain integer ids with no DB-level
// foreign keys — the engine detects dangling edges itself.

type MaterialUsage struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	ProductID  int64           `gorm:"column:product_id;index;not null"`
	MaterialID int64           `gorm:"column:material_id;not null"`
	Quantity   decimal.Decimal `gorm:"column:quantidade;type:decimal(12,2);not null;default:0"`
}

func (MaterialUsage) TableName() string { return "materials_usage" }

type ProcessUsage struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"column:product_id;index;not null"`
	ProcessID int64           `gorm:"column:process_id;not null"`
	Hours     decimal.Decimal `gorm:"column:horas;type:decimal(12,2);not null;default:0"`
}

func (ProcessUsage) TableName() string { return "processes_usage" }

type ThirdUsage struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"column:product_id;index;not null"`
	ThirdID   int64           `gorm:"column:third_id;not null"`
	Quantity  decimal.Decimal `gorm:"column:quantidade;type:decimal(12,2);not null;default:0"`
}

func (ThirdUsage) TableName() string { return "third_usage" }

// ComponentUsage links a parent product to a sub-assembly product, forming a
// directed graph over products that must stay acyclic.
type ComponentUsage struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	ParentProductID    int64           `gorm:"column:parent_product_id;index;not null"`
	ComponentProductID int64           `gorm:"column:component_product_id;not null"`
	Quantity           decimal.Decimal `gorm:"column:quantidade;type:decimal(12,2);not null;default:0"`
}

func (ComponentUsage) TableName() string { return "product_components" }
