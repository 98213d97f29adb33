package service

import (
	"context"

	"precificacao/internal/dto"
	"precificacao/internal/model"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, actingUserID int64, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	ListByClient(ctx context.Context, clientID int64) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id, actingUserID int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error)

	// Delete removes the product and every edge that references it, including
	// component edges where it appears as a sub-assembly of another product.
	Delete(ctx context.Context, id, actingUserID int64) error

	// SaveGrid reconciles the product table against the submitted grid in one
	// transaction: zero-id rows are created, known ids updated, and ids
	// missing from the grid cascade-deleted.
	SaveGrid(ctx context.Context, actingUserID int64, req dto.SaveProductGridRequest) error
}

type productService struct {
	products repository.ProductRepository
	clients  repository.ClientRepository
}

func NewProductService(products repository.ProductRepository, clients repository.ClientRepository) ProductService {
	return &productService{products: products, clients: clients}
}

func (s *productService) Create(ctx context.Context, actingUserID int64, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Quantity.IsNegative() {
		return nil, ErrNegativeInput
	}
	qty := req.Quantity
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	p := &model.Product{
		Code:          req.Code,
		Name:          req.Name,
		Quantity:      qty,
		DestinationUF: req.DestinationUF,
		NCM:           req.NCM,
		OriginUF:      req.OriginUF,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	rows, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return productsToList(rows), nil
}

func (s *productService) ListByClient(ctx context.Context, clientID int64) (*dto.ProductListResponse, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, notFound(err)
	}
	rows, err := s.products.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return productsToList(rows), nil
}

func (s *productService) Update(ctx context.Context, id, actingUserID int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Quantity != nil {
		if req.Quantity.IsNegative() {
			return nil, ErrNegativeInput
		}
		p.Quantity = *req.Quantity
	}
	if req.DestinationUF != nil {
		p.DestinationUF = *req.DestinationUF
	}
	if req.NCM != nil {
		p.NCM = *req.NCM
	}
	if req.OriginUF != nil {
		p.OriginUF = *req.OriginUF
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id, actingUserID int64) error {
	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if _, err := s.products.FindByIDTx(tx, id); err != nil {
			return notFound(err)
		}
		return s.products.DeleteCascadeTx(tx, id)
	})
}

func (s *productService) SaveGrid(ctx context.Context, actingUserID int64, req dto.SaveProductGridRequest) error {
	for _, r := range req.Rows {
		if r.Quantity.IsNegative() {
			return ErrNegativeInput
		}
	}
	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		existing, err := s.products.ListTx(tx)
		if err != nil {
			return err
		}

		kept := make(map[int64]bool, len(req.Rows))
		for _, r := range req.Rows {
			qty := r.Quantity
			if qty.IsZero() {
				qty = decimal.NewFromInt(1)
			}
			p := model.Product{
				ID:            r.ID,
				Code:          r.Code,
				Name:          r.Name,
				Quantity:      qty,
				DestinationUF: r.DestinationUF,
				NCM:           r.NCM,
				OriginUF:      r.OriginUF,
			}
			if r.ID == 0 {
				if err := s.products.CreateTx(tx, &p); err != nil {
					return err
				}
			} else {
				if err := s.products.UpdateTx(tx, &p); err != nil {
					return err
				}
			}
			kept[p.ID] = true
		}

		for _, p := range existing {
			if kept[p.ID] {
				continue
			}
			if err := s.products.DeleteCascadeTx(tx, p.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Quantity:      p.Quantity,
		DestinationUF: p.DestinationUF,
		NCM:           p.NCM,
		OriginUF:      p.OriginUF,
	}
}

func productsToList(rows []model.Product) *dto.ProductListResponse {
	out := make([]dto.ProductResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *productToResponse(&rows[i]))
	}
	return &dto.ProductListResponse{Data: out, Total: len(out)}
}
