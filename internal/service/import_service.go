package service

import (
	"context"
	"strings"
	"time"

	"precificacao/internal/dto"
	"precificacao/internal/model"
	"precificacao/internal/repository"
)

// ImportService appends spreadsheet rows to the catalog tables. Imports never
// touch existing rows; deduplication stays a catalog-editing concern.
type ImportService interface {
	ImportProcesses(ctx context.Context, actingUserID int64, rows []dto.ProcessImportRow) (*dto.ImportResponse, error)
	ImportMaterials(ctx context.Context, actingUserID int64, rows []dto.MaterialImportRow) (*dto.ImportResponse, error)
}

// spreadsheetOrigin tags processes created by an import so the catalog editor
// can tell them from manual rows.
const spreadsheetOrigin = "Planilha 1"

type importService struct {
	catalog repository.CatalogRepository
}

func NewImportService(catalog repository.CatalogRepository) ImportService {
	return &importService{catalog: catalog}
}

func (s *importService) ImportProcesses(ctx context.Context, actingUserID int64, rows []dto.ProcessImportRow) (*dto.ImportResponse, error) {
	records := make([]model.Process, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if r.PricePerHour.IsNegative() {
			return nil, ErrNegativeInput
		}
		unit := r.Unit
		if unit == "" {
			unit = "hora"
		}
		records = append(records, model.Process{
			Group:        strings.TrimSpace(r.Group),
			Subgroup:     strings.TrimSpace(r.Subgroup),
			Name:         name,
			PricePerHour: r.PricePerHour,
			Unit:         unit,
			Origin:       spreadsheetOrigin,
		})
	}
	if err := s.catalog.CreateProcesses(ctx, records); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Imported: len(records)}, nil
}

func (s *importService) ImportMaterials(ctx context.Context, actingUserID int64, rows []dto.MaterialImportRow) (*dto.ImportResponse, error) {
	now := time.Now()
	records := make([]model.Material, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if r.UnitPrice.IsNegative() {
			return nil, ErrNegativeInput
		}
		unit := r.Unit
		if unit == "" {
			unit = "un"
		}
		records = append(records, model.Material{
			Group:     strings.TrimSpace(r.Group),
			Subgroup:  strings.TrimSpace(r.Subgroup),
			Name:      name,
			NCM:       strings.TrimSpace(r.NCM),
			Unit:      unit,
			UnitPrice: r.UnitPrice,
			Supplier:  strings.TrimSpace(r.Supplier),
			UpdatedAt: now,
		})
	}
	if err := s.catalog.CreateMaterials(ctx, records); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Imported: len(records)}, nil
}
