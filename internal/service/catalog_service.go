package service

import (
	"context"
	"time"

	"precificacao/internal/dto"
	"precificacao/internal/model"
	"precificacao/internal/repository"

	"gorm.io/gorm"
)

// CatalogService serves the flat reference tables. Saves are whole-table
// replaces: the editing UI submits the full grid and the previous contents
// are discarded inside one transaction.
type CatalogService interface {
	ListMaterials(ctx context.Context) ([]dto.MaterialRow, error)
	ListProcesses(ctx context.Context) ([]dto.ProcessRow, error)
	ListThirdParty(ctx context.Context) ([]dto.ThirdPartyRow, error)
	ListAdminCosts(ctx context.Context) ([]dto.AdminCostRow, error)
	ListClients(ctx context.Context) ([]dto.ClientRow, error)
	ListNcmTaxes(ctx context.Context) ([]dto.NcmTaxRow, error)

	ReplaceMaterials(ctx context.Context, actingUserID int64, req dto.ReplaceMaterialsRequest) error
	ReplaceProcesses(ctx context.Context, actingUserID int64, req dto.ReplaceProcessesRequest) error
	ReplaceThirdParty(ctx context.Context, actingUserID int64, req dto.ReplaceThirdPartyRequest) error
	ReplaceAdminCosts(ctx context.Context, actingUserID int64, req dto.ReplaceAdminCostsRequest) error
	ReplaceClients(ctx context.Context, actingUserID int64, req dto.ReplaceClientsRequest) error
	ReplaceNcmTaxes(ctx context.Context, actingUserID int64, req dto.ReplaceNcmTaxesRequest) error
}

type catalogService struct {
	catalog repository.CatalogRepository
	clients repository.ClientRepository
}

func NewCatalogService(catalog repository.CatalogRepository, clients repository.ClientRepository) CatalogService {
	return &catalogService{catalog: catalog, clients: clients}
}

const dateLayout = "2006-01-02"

func (s *catalogService) ListMaterials(ctx context.Context) ([]dto.MaterialRow, error) {
	rows, err := s.catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, materialToRow(m))
	}
	return out, nil
}

func (s *catalogService) ListProcesses(ctx context.Context) ([]dto.ProcessRow, error) {
	rows, err := s.catalog.ListProcesses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcessRow, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ProcessRow{
			ID:           p.ID,
			Group:        p.Group,
			Subgroup:     p.Subgroup,
			Name:         p.Name,
			PricePerHour: p.PricePerHour,
			Unit:         p.Unit,
			Origin:       p.Origin,
		})
	}
	return out, nil
}

func (s *catalogService) ListThirdParty(ctx context.Context) ([]dto.ThirdPartyRow, error) {
	rows, err := s.catalog.ListThirdParty(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThirdPartyRow, 0, len(rows))
	for _, t := range rows {
		out = append(out, dto.ThirdPartyRow{
			ID:         t.ID,
			Name:       t.Name,
			UnitPrice:  t.UnitPrice,
			DefaultQty: t.DefaultQty,
			Supplier:   t.Supplier,
			Unit:       t.Unit,
		})
	}
	return out, nil
}

func (s *catalogService) ListAdminCosts(ctx context.Context) ([]dto.AdminCostRow, error) {
	rows, err := s.catalog.ListAdminCosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminCostRow, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.AdminCostRow{ID: a.ID, Name: a.Name, Value: a.Value})
	}
	return out, nil
}

func (s *catalogService) ListClients(ctx context.Context) ([]dto.ClientRow, error) {
	rows, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientRow, 0, len(rows))
	for _, c := range rows {
		out = append(out, dto.ClientRow{
			ID:     c.ID,
			Name:   c.Name,
			Plant:  c.Plant,
			UF:     c.UF,
			City:   c.City,
			Regime: c.Regime,
			PIS:    c.PIS,
			COFINS: c.COFINS,
			ICMS:   c.ICMS,
			Factor: c.Factor,
		})
	}
	return out, nil
}

func (s *catalogService) ListNcmTaxes(ctx context.Context) ([]dto.NcmTaxRow, error) {
	rows, err := s.clients.ListNcmTaxes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NcmTaxRow, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.NcmTaxRow{ID: n.ID, NCM: n.NCM, PIS: n.PIS, COFINS: n.COFINS, ICMS: n.ICMS})
	}
	return out, nil
}

func (s *catalogService) ReplaceMaterials(ctx context.Context, actingUserID int64, req dto.ReplaceMaterialsRequest) error {
	rows := make([]model.Material, 0, len(req.Rows))
	for _, r := range req.Rows {
		updatedAt := time.Now()
		if r.UpdatedAt != "" {
			if t, err := time.Parse(dateLayout, r.UpdatedAt); err == nil {
				updatedAt = t
			}
		}
		rows = append(rows, model.Material{
			ID:        r.ID,
			Group:     r.Group,
			Subgroup:  r.Subgroup,
			Name:      r.Name,
			NCM:       r.NCM,
			Unit:      r.Unit,
			UnitPrice: r.UnitPrice,
			Supplier:  r.Supplier,
			UpdatedAt: updatedAt,
		})
	}
	return runTx(ctx, s.catalog.DB(), func(tx *gorm.DB) error {
		return s.catalog.ReplaceMaterialsTx(tx, rows)
	})
}

func (s *catalogService) ReplaceProcesses(ctx context.Context, actingUserID int64, req dto.ReplaceProcessesRequest) error {
	rows := make([]model.Process, 0, len(req.Rows))
	for _, r := range req.Rows {
		origin := r.Origin
		if origin == "" {
			origin = "Manual"
		}
		rows = append(rows, model.Process{
			ID:           r.ID,
			Group:        r.Group,
			Subgroup:     r.Subgroup,
			Name:         r.Name,
			PricePerHour: r.PricePerHour,
			Unit:         r.Unit,
			Origin:       origin,
		})
	}
	return runTx(ctx, s.catalog.DB(), func(tx *gorm.DB) error {
		return s.catalog.ReplaceProcessesTx(tx, rows)
	})
}

func (s *catalogService) ReplaceThirdParty(ctx context.Context, actingUserID int64, req dto.ReplaceThirdPartyRequest) error {
	rows := make([]model.ThirdPartyItem, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.ThirdPartyItem{
			ID:         r.ID,
			Name:       r.Name,
			UnitPrice:  r.UnitPrice,
			DefaultQty: r.DefaultQty,
			Supplier:   r.Supplier,
			Unit:       r.Unit,
		})
	}
	return runTx(ctx, s.catalog.DB(), func(tx *gorm.DB) error {
		return s.catalog.ReplaceThirdPartyTx(tx, rows)
	})
}

func (s *catalogService) ReplaceAdminCosts(ctx context.Context, actingUserID int64, req dto.ReplaceAdminCostsRequest) error {
	rows := make([]model.AdminCost, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.AdminCost{ID: r.ID, Name: r.Name, Value: r.Value})
	}
	return runTx(ctx, s.catalog.DB(), func(tx *gorm.DB) error {
		return s.catalog.ReplaceAdminCostsTx(tx, rows)
	})
}

func (s *catalogService) ReplaceClients(ctx context.Context, actingUserID int64, req dto.ReplaceClientsRequest) error {
	rows := make([]model.Client, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.Client{
			ID:     r.ID,
			Name:   r.Name,
			Plant:  r.Plant,
			UF:     r.UF,
			City:   r.City,
			Regime: r.Regime,
			PIS:    r.PIS,
			COFINS: r.COFINS,
			ICMS:   r.ICMS,
			Factor: r.Factor,
		})
	}
	return runTx(ctx, s.clients.DB(), func(tx *gorm.DB) error {
		return s.clients.ReplaceAllTx(tx, rows)
	})
}

func (s *catalogService) ReplaceNcmTaxes(ctx context.Context, actingUserID int64, req dto.ReplaceNcmTaxesRequest) error {
	rows := make([]model.NcmTax, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.NcmTax{ID: r.ID, NCM: r.NCM, PIS: r.PIS, COFINS: r.COFINS, ICMS: r.ICMS})
	}
	return runTx(ctx, s.clients.DB(), func(tx *gorm.DB) error {
		return s.clients.ReplaceNcmTaxesTx(tx, rows)
	})
}

func materialToRow(m model.Material) dto.MaterialRow {
	updated := ""
	if !m.UpdatedAt.IsZero() {
		updated = m.UpdatedAt.Format(dateLayout)
	}
	return dto.MaterialRow{
		ID:        m.ID,
		Group:     m.Group,
		Subgroup:  m.Subgroup,
		Name:      m.Name,
		NCM:       m.NCM,
		Unit:      m.Unit,
		UnitPrice: m.UnitPrice,
		Supplier:  m.Supplier,
		UpdatedAt: updated,
	}
}
