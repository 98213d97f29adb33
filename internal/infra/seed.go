package infra

import (
	"time"

	"precificacao/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedDemo inserts a small demo dataset so a fresh database is immediately
// usable. Each table is only seeded while empty, so restarts never duplicate
// rows.
func SeedDemo(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if empty(tx, &model.Material{}) {
			m := model.Material{
				Group:     "Aço",
				Subgroup:  "Chapas",
				Name:      "Chapa A36 3mm",
				NCM:       "7208.38.90",
				Unit:      "kg",
				UnitPrice: decimal.RequireFromString("8.5"),
				Supplier:  "Fornecedor X",
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.Process{}) {
			p := model.Process{
				Group:        "Usinagem",
				Subgroup:     "CNC",
				Name:         "Fresamento CNC",
				PricePerHour: decimal.NewFromInt(120),
				Unit:         "hora",
				Origin:       "Planilha 1",
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.ThirdPartyItem{}) {
			t := model.ThirdPartyItem{
				Name:       "Tratamento térmico",
				UnitPrice:  decimal.NewFromInt(300),
				DefaultQty: decimal.NewFromInt(1),
				Supplier:   "Terceiro Y",
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.AdminCost{}) {
			a := model.AdminCost{Name: "Frete", Value: decimal.NewFromInt(500)}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.Client{}) {
			c := model.Client{
				Name:   "Cliente Demo",
				Plant:  "Planta 1",
				UF:     "SP",
				City:   "São Paulo",
				Regime: "real",
				PIS:    decimal.RequireFromString("0.0165"),
				COFINS: decimal.RequireFromString("0.076"),
				ICMS:   decimal.RequireFromString("0.12"),
				Factor: decimal.NewFromInt(1),
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.NcmTax{}) {
			n := model.NcmTax{
				NCM:    "7208.38.90",
				PIS:    decimal.RequireFromString("0.0165"),
				COFINS: decimal.RequireFromString("0.076"),
				ICMS:   decimal.RequireFromString("0.12"),
			}
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		if empty(tx, &model.Product{}) {
			p := model.Product{
				Code:          "PRD-0001",
				Name:          "Conjunto Mecânico",
				Quantity:      decimal.NewFromInt(1),
				DestinationUF: "SP",
				NCM:           "8421.99.90",
				OriginUF:      "SP",
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}

			var material model.Material
			if err := tx.Order("id ASC").First(&material).Error; err != nil {
				return err
			}
			mu := model.MaterialUsage{ProductID: p.ID, MaterialID: material.ID, Quantity: decimal.NewFromInt(150)}
			if err := tx.Create(&mu).Error; err != nil {
				return err
			}

			var process model.Process
			if err := tx.Order("id ASC").First(&process).Error; err != nil {
				return err
			}
			pu := model.ProcessUsage{ProductID: p.ID, ProcessID: process.ID, Hours: decimal.NewFromInt(12)}
			if err := tx.Create(&pu).Error; err != nil {
				return err
			}

			var third model.ThirdPartyItem
			if err := tx.Order("id ASC").First(&third).Error; err != nil {
				return err
			}
			tu := model.ThirdUsage{ProductID: p.ID, ThirdID: third.ID, Quantity: decimal.NewFromInt(1)}
			if err := tx.Create(&tu).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func empty(tx *gorm.DB, m interface{}) bool {
	var count int64
	tx.Model(m).Count(&count)
	return count == 0
}
