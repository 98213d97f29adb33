package service

import (
	"context"
	"errors"

	"precificacao/internal/dto"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// interstateICMS is the fixed rate applied whenever the manufacturing-origin
// state differs from the client's destination state. Applied last; always wins.
var interstateICMS = decimal.RequireFromString("0.12")

// TaxRates holds resolved rates as exact fractions (0.0165 = 1.65%).
type TaxRates struct {
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	ICMS   decimal.Decimal
	Total  decimal.Decimal
	Regime string
}

type TaxService interface {
	// ResolveRates determines effective PIS/COFINS/ICMS for a (product, client)
	// pair: client defaults, replaced wholesale by an NCM override row when one
	// exists, with the interstate ICMS override applied after everything else.
	ResolveRates(ctx context.Context, productID, clientID int64) (*dto.TaxRatesResponse, error)

	// ResolveRatesTx is the exact variant for callers already holding a tx.
	ResolveRatesTx(tx *gorm.DB, productID, clientID int64) (*TaxRates, error)
}

type taxService struct {
	products repository.ProductRepository
	clients  repository.ClientRepository
}

func NewTaxService(products repository.ProductRepository, clients repository.ClientRepository) TaxService {
	return &taxService{products: products, clients: clients}
}

func (s *taxService) ResolveRates(ctx context.Context, productID, clientID int64) (*dto.TaxRatesResponse, error) {
	var rates *TaxRates
	err := runTx(ctx, s.clients.DB(), func(tx *gorm.DB) error {
		var txErr error
		rates, txErr = s.ResolveRatesTx(tx, productID, clientID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return rates.toResponse(), nil
}

func (s *taxService) ResolveRatesTx(tx *gorm.DB, productID, clientID int64) (*TaxRates, error) {
	p, err := s.products.FindByIDTx(tx, productID)
	if err != nil {
		return nil, notFound(err)
	}
	c, err := s.clients.FindByIDTx(tx, clientID)
	if err != nil {
		return nil, notFound(err)
	}

	pis, cofins, icms := c.PIS, c.COFINS, c.ICMS

	// NCM override replaces all three rates wholesale, never field by field.
	if override, err := s.clients.FindNcmTaxTx(tx, p.NCM); err == nil {
		pis, cofins, icms = override.PIS, override.COFINS, override.ICMS
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if p.OriginUF != p.DestinationUF {
		icms = interstateICMS
	}

	return &TaxRates{
		PIS:    pis,
		COFINS: cofins,
		ICMS:   icms,
		Total:  pis.Add(cofins).Add(icms),
		Regime: c.Regime,
	}, nil
}

// toResponse rounds rates to the 4-decimal output precision.
func (t *TaxRates) toResponse() *dto.TaxRatesResponse {
	return &dto.TaxRatesResponse{
		PIS:    t.PIS.Round(4),
		COFINS: t.COFINS.Round(4),
		ICMS:   t.ICMS.Round(4),
		Total:  t.Total.Round(4),
		Regime: t.Regime,
	}
}
