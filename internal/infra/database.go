package infra

import (
	"fmt"

	"precificacao/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the file-backed SQLite store and runs AutoMigrate to
// create or update all tables. The schema deliberately carries no foreign-key
// constraints: usage edges hold plain integer ids and the engine surfaces
// dangling references itself.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; a single open connection avoids SQLITE_BUSY
	// on concurrent bulk saves.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Material{},
		&model.Process{},
		&model.ThirdPartyItem{},
		&model.AdminCost{},
		&model.Client{},
		&model.NcmTax{},
		&model.Product{},
		&model.MaterialUsage{},
		&model.ProcessUsage{},
		&model.ThirdUsage{},
		&model.ComponentUsage{},
		&model.QuoteLink{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
