package service

import (
	"context"
	"errors"
	"fmt"

	"precificacao/internal/dto"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostBreakdown holds exact (unrounded) per-category totals. Administrative
// cost is a property of the top-level good only and never rolls up through
// component edges.
type CostBreakdown struct {
	Materials      decimal.Decimal
	Processes      decimal.Decimal
	ThirdParty     decimal.Decimal
	Administrative decimal.Decimal
	TotalExTax     decimal.Decimal
}

type CostingService interface {
	// ComputeBaseCost resolves the full recursive cost of a product inside one
	// read transaction and returns cent-rounded totals.
	ComputeBaseCost(ctx context.Context, productID int64) (*dto.CostBreakdownResponse, error)

	// ComputeBaseCostTx is the exact-arithmetic variant for callers that
	// already hold a transaction (pricing runs rollup + tax resolution on one
	// snapshot).
	ComputeBaseCostTx(tx *gorm.DB, productID int64) (*CostBreakdown, error)
}

type costingService struct {
	products    repository.ProductRepository
	composition repository.CompositionRepository
	catalog     repository.CatalogRepository
}

func NewCostingService(
	products repository.ProductRepository,
	composition repository.CompositionRepository,
	catalog repository.CatalogRepository,
) CostingService {
	return &costingService{products: products, composition: composition, catalog: catalog}
}

func (s *costingService) ComputeBaseCost(ctx context.Context, productID int64) (*dto.CostBreakdownResponse, error) {
	var bc *CostBreakdown
	err := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		var txErr error
		bc, txErr = s.ComputeBaseCostTx(tx, productID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return &dto.CostBreakdownResponse{
		Materials:      bc.Materials.Round(2),
		Processes:      bc.Processes.Round(2),
		ThirdParty:     bc.ThirdParty.Round(2),
		Administrative: bc.Administrative.Round(2),
		TotalExTax:     bc.TotalExTax.Round(2),
	}, nil
}

func (s *costingService) ComputeBaseCostTx(tx *gorm.DB, productID int64) (*CostBreakdown, error) {
	if _, err := s.products.FindByIDTx(tx, productID); err != nil {
		return nil, notFound(err)
	}

	// Product ids on the current recursion path. A revisit means the
	// composition graph is no longer a DAG.
	onPath := make(map[int64]bool)
	materials, processes, third, err := s.rollup(tx, productID, onPath)
	if err != nil {
		return nil, err
	}

	admin, err := s.catalog.SumAdminCostsTx(tx)
	if err != nil {
		return nil, err
	}

	return &CostBreakdown{
		Materials:      materials,
		Processes:      processes,
		ThirdParty:     third,
		Administrative: admin,
		TotalExTax:     materials.Add(processes).Add(third).Add(admin),
	}, nil
}

// rollup sums the product's direct usage costs per category and adds every
// component's totals scaled by the edge quantity. Administrative cost is
// excluded here on purpose: overheads apply at the finished-good level only.
func (s *costingService) rollup(tx *gorm.DB, productID int64, onPath map[int64]bool) (materials, processes, third decimal.Decimal, err error) {
	if onPath[productID] {
		return decimal.Zero, decimal.Zero, decimal.Zero,
			fmt.Errorf("%w: produto %d", ErrCycleDetected, productID)
	}
	onPath[productID] = true
	defer delete(onPath, productID)

	materials, processes, third = decimal.Zero, decimal.Zero, decimal.Zero

	matUsage, err := s.composition.MaterialUsageTx(tx, productID)
	if err != nil {
		return
	}
	for _, u := range matUsage {
		m, findErr := s.catalog.FindMaterialTx(tx, u.MaterialID)
		if findErr != nil {
			err = danglingOr(findErr, "material", u.MaterialID)
			return
		}
		materials = materials.Add(u.Quantity.Mul(m.UnitPrice))
	}

	procUsage, err := s.composition.ProcessUsageTx(tx, productID)
	if err != nil {
		return
	}
	for _, u := range procUsage {
		p, findErr := s.catalog.FindProcessTx(tx, u.ProcessID)
		if findErr != nil {
			err = danglingOr(findErr, "processo", u.ProcessID)
			return
		}
		processes = processes.Add(u.Hours.Mul(p.PricePerHour))
	}

	thirdUsage, err := s.composition.ThirdUsageTx(tx, productID)
	if err != nil {
		return
	}
	for _, u := range thirdUsage {
		t, findErr := s.catalog.FindThirdPartyTx(tx, u.ThirdID)
		if findErr != nil {
			err = danglingOr(findErr, "terceiro", u.ThirdID)
			return
		}
		third = third.Add(u.Quantity.Mul(t.UnitPrice))
	}

	components, err := s.composition.ComponentsTx(tx, productID)
	if err != nil {
		return
	}
	for _, edge := range components {
		if _, findErr := s.products.FindByIDTx(tx, edge.ComponentProductID); findErr != nil {
			err = danglingOr(findErr, "subproduto", edge.ComponentProductID)
			return
		}
		cm, cp, ct, compErr := s.rollup(tx, edge.ComponentProductID, onPath)
		if compErr != nil {
			err = compErr
			return
		}
		materials = materials.Add(cm.Mul(edge.Quantity))
		processes = processes.Add(cp.Mul(edge.Quantity))
		third = third.Add(ct.Mul(edge.Quantity))
	}

	return materials, processes, third, nil
}

func danglingOr(err error, kind string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrDanglingReference, kind, id)
	}
	return err
}
