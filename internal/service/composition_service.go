package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"precificacao/internal/dto"
	"precificacao/internal/model"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionService interface {
	Get(ctx context.Context, productID int64) (*dto.CompositionResponse, error)

	// Replace clears every usage edge the product owns and rewrites the
	// composition from the request, all inside one transaction. Catalog
	// entities referenced by name are resolved or created on the fly.
	Replace(ctx context.Context, productID, actingUserID int64, req dto.ReplaceCompositionRequest) error

	// Clear deletes every usage edge for the product across all four edge types.
	Clear(ctx context.Context, productID, actingUserID int64) error

	LinkQuote(ctx context.Context, productID, actingUserID int64, req dto.LinkQuoteRequest) (*dto.QuoteLinkResponse, error)
	UnlinkQuote(ctx context.Context, productID, clientID int64) error
	ListQuoteLinks(ctx context.Context, productID int64) ([]dto.QuoteLinkResponse, error)
}

type compositionService struct {
	products    repository.ProductRepository
	composition repository.CompositionRepository
	catalog     repository.CatalogRepository
	clients     repository.ClientRepository
	quoteLinks  repository.QuoteLinkRepository
}

func NewCompositionService(
	products repository.ProductRepository,
	composition repository.CompositionRepository,
	catalog repository.CatalogRepository,
	clients repository.ClientRepository,
	quoteLinks repository.QuoteLinkRepository,
) CompositionService {
	return &compositionService{
		products:    products,
		composition: composition,
		catalog:     catalog,
		clients:     clients,
		quoteLinks:  quoteLinks,
	}
}

func (s *compositionService) Get(ctx context.Context, productID int64) (*dto.CompositionResponse, error) {
	resp := &dto.CompositionResponse{ProductID: productID}
	err := runTx(ctx, s.composition.DB(), func(tx *gorm.DB) error {
		if _, err := s.products.FindByIDTx(tx, productID); err != nil {
			return notFound(err)
		}

		matUsage, err := s.composition.MaterialUsageTx(tx, productID)
		if err != nil {
			return err
		}
		for _, u := range matUsage {
			name := ""
			if m, err := s.catalog.FindMaterialTx(tx, u.MaterialID); err == nil {
				name = m.Name
			}
			resp.Materials = append(resp.Materials, dto.UsageLine{ID: u.ID, RefID: u.MaterialID, Name: name, Quantity: u.Quantity})
		}

		procUsage, err := s.composition.ProcessUsageTx(tx, productID)
		if err != nil {
			return err
		}
		for _, u := range procUsage {
			name := ""
			if p, err := s.catalog.FindProcessTx(tx, u.ProcessID); err == nil {
				name = p.Name
			}
			resp.Processes = append(resp.Processes, dto.UsageLine{ID: u.ID, RefID: u.ProcessID, Name: name, Quantity: u.Hours})
		}

		thirdUsage, err := s.composition.ThirdUsageTx(tx, productID)
		if err != nil {
			return err
		}
		for _, u := range thirdUsage {
			name := ""
			if t, err := s.catalog.FindThirdPartyTx(tx, u.ThirdID); err == nil {
				name = t.Name
			}
			resp.ThirdParty = append(resp.ThirdParty, dto.UsageLine{ID: u.ID, RefID: u.ThirdID, Name: name, Quantity: u.Quantity})
		}

		components, err := s.composition.ComponentsTx(tx, productID)
		if err != nil {
			return err
		}
		for _, edge := range components {
			name := ""
			if p, err := s.products.FindByIDTx(tx, edge.ComponentProductID); err == nil {
				name = p.Name
			}
			resp.Components = append(resp.Components, dto.UsageLine{ID: edge.ID, RefID: edge.ComponentProductID, Name: name, Quantity: edge.Quantity})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *compositionService) Replace(ctx context.Context, productID, actingUserID int64, req dto.ReplaceCompositionRequest) error {
	if err := validateReplace(req); err != nil {
		return err
	}

	return runTx(ctx, s.composition.DB(), func(tx *gorm.DB) error {
		if _, err := s.products.FindByIDTx(tx, productID); err != nil {
			return notFound(err)
		}

		if err := s.composition.ClearAllTx(tx, productID); err != nil {
			return err
		}

		for _, e := range req.Materials {
			id, err := s.resolveMaterial(tx, e)
			if err != nil {
				return err
			}
			if id == 0 {
				continue // blank entry, mirrors the editor skipping empty rows
			}
			u := &model.MaterialUsage{ProductID: productID, MaterialID: id, Quantity: e.Quantity}
			if err := s.composition.AddMaterialUsageTx(tx, u); err != nil {
				return err
			}
		}

		for _, e := range req.Processes {
			id, err := s.resolveProcess(tx, e)
			if err != nil {
				return err
			}
			if id == 0 {
				continue
			}
			u := &model.ProcessUsage{ProductID: productID, ProcessID: id, Hours: e.Hours}
			if err := s.composition.AddProcessUsageTx(tx, u); err != nil {
				return err
			}
		}

		for _, e := range req.ThirdParty {
			id, err := s.resolveThirdParty(tx, e)
			if err != nil {
				return err
			}
			if id == 0 {
				continue
			}
			u := &model.ThirdUsage{ProductID: productID, ThirdID: id, Quantity: e.Quantity}
			if err := s.composition.AddThirdUsageTx(tx, u); err != nil {
				return err
			}
		}

		for _, e := range req.Components {
			if e.ProductID == productID {
				return fmt.Errorf("%w: produto %d", ErrCycleDetected, productID)
			}
			if _, err := s.products.FindByIDTx(tx, e.ProductID); err != nil {
				return danglingOr(err, "subproduto", e.ProductID)
			}
			edge := &model.ComponentUsage{ParentProductID: productID, ComponentProductID: e.ProductID, Quantity: e.Quantity}
			if err := s.composition.AddComponentTx(tx, edge); err != nil {
				return err
			}
		}
		return nil
	})
}

func validateReplace(req dto.ReplaceCompositionRequest) error {
	for _, e := range req.Materials {
		if e.Quantity.IsNegative() {
			return ErrNegativeInput
		}
	}
	for _, e := range req.Processes {
		if e.Hours.IsNegative() {
			return ErrNegativeInput
		}
	}
	for _, e := range req.ThirdParty {
		if e.Quantity.IsNegative() {
			return ErrNegativeInput
		}
	}
	for _, e := range req.Components {
		if e.Quantity.IsNegative() {
			return ErrNegativeInput
		}
	}
	return nil
}

// resolveMaterial returns the catalog id an entry refers to. By id the row
// must exist; by name the first match (lowest id) wins, and an unknown name
// creates a zero-priced row the way the composition editor does. Returns 0
// for a blank entry.
func (s *compositionService) resolveMaterial(tx *gorm.DB, e dto.MaterialUsageEntry) (int64, error) {
	if e.MaterialID != 0 {
		if _, err := s.catalog.FindMaterialTx(tx, e.MaterialID); err != nil {
			return 0, danglingOr(err, "material", e.MaterialID)
		}
		return e.MaterialID, nil
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return 0, nil
	}
	if m, err := s.catalog.FindMaterialByNameTx(tx, name); err == nil {
		return m.ID, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	m := &model.Material{Name: name, Unit: "un", UpdatedAt: time.Now()}
	if err := s.catalog.CreateMaterialTx(tx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *compositionService) resolveProcess(tx *gorm.DB, e dto.ProcessUsageEntry) (int64, error) {
	if e.ProcessID != 0 {
		if _, err := s.catalog.FindProcessTx(tx, e.ProcessID); err != nil {
			return 0, danglingOr(err, "processo", e.ProcessID)
		}
		return e.ProcessID, nil
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return 0, nil
	}
	if p, err := s.catalog.FindProcessByNameTx(tx, name); err == nil {
		return p.ID, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	p := &model.Process{Name: name, Unit: "hora", Origin: "Manual"}
	if err := s.catalog.CreateProcessTx(tx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *compositionService) resolveThirdParty(tx *gorm.DB, e dto.ThirdUsageEntry) (int64, error) {
	if e.ThirdID != 0 {
		if _, err := s.catalog.FindThirdPartyTx(tx, e.ThirdID); err != nil {
			return 0, danglingOr(err, "terceiro", e.ThirdID)
		}
		return e.ThirdID, nil
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return 0, nil
	}
	if t, err := s.catalog.FindThirdPartyByNameTx(tx, name); err == nil {
		return t.ID, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	t := &model.ThirdPartyItem{Name: name, DefaultQty: decimal.NewFromInt(1)}
	if err := s.catalog.CreateThirdPartyTx(tx, t); err != nil {
		return 0, err
	}
	return t.ID, nil
}

func (s *compositionService) Clear(ctx context.Context, productID, actingUserID int64) error {
	return runTx(ctx, s.composition.DB(), func(tx *gorm.DB) error {
		if _, err := s.products.FindByIDTx(tx, productID); err != nil {
			return notFound(err)
		}
		return s.composition.ClearAllTx(tx, productID)
	})
}

func (s *compositionService) LinkQuote(ctx context.Context, productID, actingUserID int64, req dto.LinkQuoteRequest) (*dto.QuoteLinkResponse, error) {
	if req.MarginPct.IsNegative() || req.FinalPrice.IsNegative() {
		return nil, ErrNegativeInput
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, notFound(err)
	}
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		return nil, notFound(err)
	}

	link := &model.QuoteLink{
		ProductID:    productID,
		ClientID:     req.ClientID,
		MarginPct:    req.MarginPct,
		FinalPrice:   req.FinalPrice,
		ActingUserID: actingUserID,
	}
	if err := s.quoteLinks.Create(ctx, link); err != nil {
		return nil, err
	}
	return quoteLinkToResponse(link), nil
}

func (s *compositionService) UnlinkQuote(ctx context.Context, productID, clientID int64) error {
	return s.quoteLinks.Delete(ctx, productID, clientID)
}

func (s *compositionService) ListQuoteLinks(ctx context.Context, productID int64) ([]dto.QuoteLinkResponse, error) {
	links, err := s.quoteLinks.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteLinkResponse, 0, len(links))
	for i := range links {
		out = append(out, *quoteLinkToResponse(&links[i]))
	}
	return out, nil
}

func quoteLinkToResponse(l *model.QuoteLink) *dto.QuoteLinkResponse {
	return &dto.QuoteLinkResponse{
		ID:         l.ID,
		ProductID:  l.ProductID,
		ClientID:   l.ClientID,
		MarginPct:  l.MarginPct,
		FinalPrice: l.FinalPrice,
		CreatedAt:  l.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
